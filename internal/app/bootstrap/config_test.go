package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	valid := AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "solar_fair",
		PageSize:      10,
	}
	if err := ValidateConfig(nil, valid, logger); err != nil {
		t.Errorf("expected valid config to pass, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{name: "bad mongo uri", mutate: func(c *AppConfig) { c.MongoURI = "not-a-mongo-uri" }},
		{name: "empty database", mutate: func(c *AppConfig) { c.MongoDatabase = "" }},
		{name: "zero page size", mutate: func(c *AppConfig) { c.PageSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := ValidateConfig(nil, cfg, logger); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
