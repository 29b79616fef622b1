package main

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/colnorm/internal/config"
	"github.com/tensorplex-labs/colnorm/internal/utils/logger"
	"github.com/tensorplex-labs/colnorm/pkg/normalize"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.Environment)

	n, method, err := normalizerFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid normalize config")
	}

	df := sampleFrame()
	excluded := cfg.Excluded
	if len(excluded) == 0 {
		excluded = []string{"id"}
	}

	runVariants(df, excluded)
	runConfigured(n, method, df, excluded)
}

func normalizerFromConfig(cfg *config.AppConfig) (*normalize.Normalizer, normalize.Method, error) {
	method, err := normalize.ParseMethod(cfg.Method)
	if err != nil {
		return nil, "", err
	}
	policy, err := normalize.ParseDegeneratePolicy(cfg.DegeneratePolicy)
	if err != nil {
		return nil, "", err
	}

	return normalize.New(
		normalize.WithDegeneratePolicy(policy),
		normalize.WithQuantileRange(cfg.QuantileLow, cfg.QuantileHigh),
	), method, nil
}

func sampleFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{1, 2, 3, 4, 5}, series.Int, "id"),
		series.New([]string{"t0", "t1", "t2", "t3", "t4"}, series.String, "ts"),
		series.New([]float64{0, 5, 10, 15, 200}, series.Float, "feat1"),
		series.New([]float64{10, 20, 30, 40, 50}, series.Float, "feat2"),
		series.New([]float64{7, 7, 7, 7, 7}, series.Float, "flat"),
	)
}

func runVariants(df dataframe.DataFrame, excluded []string) {
	variants := []struct {
		name string
		fn   func(dataframe.DataFrame, ...string) (normalize.Result, error)
	}{
		{"zero_one_normalize", normalize.ZeroOneNormalize},
		{"negativeone_one_normalize", normalize.NegativeOneOneNormalize},
		{"standardize", normalize.Standardize},
		{"robust_standardize", normalize.RobustStandardize},
	}

	for _, v := range variants {
		log.Info().Msgf("--- Testing %s ---", v.name)
		res, err := v.fn(df, excluded...)
		if err != nil {
			log.Error().Err(err).Str("variant", v.name).Msg("normalization failed")
			continue
		}
		log.Info().Strs("columns", res.Frame.Names()).Strs("non_numeric", res.NonNumeric).Msg("normalized")
		fmt.Println(res.Frame)
	}
}

// runConfigured fits on the whole frame and applies the statistics to a
// partition after shipping them through the encoded form.
func runConfigured(n *normalize.Normalizer, method normalize.Method, df dataframe.DataFrame, excluded []string) {
	log.Info().Msgf("--- Testing configured %s ---", method)

	stats, err := n.Fit(df, method, excluded...)
	if err != nil {
		log.Error().Err(err).Msg("fit failed")
		return
	}

	blob, err := normalize.EncodeStatistics(stats)
	if err != nil {
		log.Error().Err(err).Msg("encode statistics failed")
		return
	}
	decoded, err := normalize.DecodeStatistics(blob)
	if err != nil {
		log.Error().Err(err).Msg("decode statistics failed")
		return
	}
	log.Info().Int("bytes", len(blob)).Int("columns", len(decoded.Columns)).Msg("statistics encoded")

	out, err := decoded.Transform(df.Subset([]int{3, 4}))
	if err != nil {
		log.Error().Err(err).Msg("transform failed")
		return
	}
	fmt.Println(out)
}
