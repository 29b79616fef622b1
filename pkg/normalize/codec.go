package normalize

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
)

// EncodeStatistics serializes fitted statistics into a zstd-compressed JSON
// blob that DecodeStatistics turns back into the same statistics.
func EncodeStatistics(s *Statistics) ([]byte, error) {
	if s == nil {
		return nil, invalidInput("nil statistics")
	}

	b, err := sonic.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal statistics: %w", err)
	}

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to create writer: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("zstd: failed to compress statistics: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zstd: failed to flush statistics: %w", err)
	}

	return buf.Bytes(), nil
}

func DecodeStatistics(data []byte) (*Statistics, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to create reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to decompress statistics: %w", err)
	}

	var s Statistics
	if err := sonic.Unmarshal(out, &s); err != nil {
		return nil, fmt.Errorf("unmarshal statistics: %w", err)
	}

	if _, err := ParseMethod(string(s.Method)); err != nil {
		return nil, err
	}
	if _, err := ParseDegeneratePolicy(string(s.Policy)); err != nil {
		return nil, err
	}
	switch s.Method {
	case MethodZeroOne, MethodNegativeOneOne:
		if err := checkFeatureRange(s.FeatureRange); err != nil {
			return nil, err
		}
	case MethodRobust:
		if err := checkQuantileRange(s.QuantileRange); err != nil {
			return nil, err
		}
	}
	for _, c := range s.Columns {
		if c.Scale == 0 || !isFinite(c.Scale) || !isFinite(c.Center) {
			return nil, invalidInput("column %q has center %v and scale %v", c.Name, c.Center, c.Scale)
		}
	}

	return &s, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
