package models

type Config struct {
	Debug bool `envconfig:"GWAS_DEBUG" default:"false"`

	Api struct {
		Port string `envconfig:"GWAS_API_INTERNAL_PORT" default:"5000"`

		// only accepted protocol version / dataset-version tag
		SupportedApiVersion int    `envconfig:"GWAS_API_VERSION" default:"1"`
		SupportedMdVersion  string `envconfig:"GWAS_MD_VERSION" default:"1.0"`

		DefaultPhenotype string `envconfig:"GWAS_DEFAULT_PHENOTYPE" default:"T2D"`
		DefaultChrom     string `envconfig:"GWAS_DEFAULT_CHROM" default:"1"`
	}

	Data struct {
		ManifestPath          string `envconfig:"GWAS_MANIFEST_PATH" default:"/data/manifest.yml"`
		LoadMaxElapsedMinutes int    `envconfig:"GWAS_LOAD_MAX_ELAPSED_MINUTES" default:"2"`
	}

	Query struct {
		IntermediateWidthThreshold int `envconfig:"GWAS_INTERMEDIATE_WIDTH_THRESHOLD" default:"600000"`
		LargeWidthThreshold        int `envconfig:"GWAS_LARGE_WIDTH_THRESHOLD" default:"10000000"`
	}

	Regression struct {
		DefaultMinMac    int `envconfig:"GWAS_DEFAULT_MIN_MAC" default:"1"`
		ConcurrencyLevel int `envconfig:"GWAS_REGRESSION_CONCURRENCY_LEVEL" default:"8"`
		BatchSize        int `envconfig:"GWAS_REGRESSION_BATCH_SIZE" default:"256"`
	}

	Housekeeping struct {
		IntervalMinutes int `envconfig:"GWAS_HOUSEKEEPING_INTERVAL_MINUTES" default:"60"`
	}
}
