// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chainstore

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstdDecoder is reused across loads. zstd.Decoder is safe for concurrent
// use through DecodeAll.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("chainstore: zstd decoder initialization failed: " + err.Error())
	}
}

// compress wraps data in the given stream format. Ledgers are small, so
// whole-buffer compression is fine.
func compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		var buffer bytes.Buffer
		writer, err := zstd.NewWriter(&buffer, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		if _, err := writer.Write(data); err != nil {
			writer.Close()
			return nil, fmt.Errorf("zstd compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("zstd compress: %w", err)
		}
		return buffer.Bytes(), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			writer.Close()
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}

// decompress reverses compress.
func decompress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		decoded, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return decoded, nil

	case CompressionLZ4:
		decoded, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}
