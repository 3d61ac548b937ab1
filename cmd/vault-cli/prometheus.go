// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Not-Sarthak/vault-anchor/rpc"
)

var prometheusCmd = &cobra.Command{
	Use:   "prometheus",
	Short: "Prometheus helpers",
}

type PrometheusStaticConfig struct {
	Targets []string `yaml:"targets"`
}

type PrometheusScrapeConfig struct {
	JobName       string                    `yaml:"job_name"`
	StaticConfigs []*PrometheusStaticConfig `yaml:"static_configs"`
	MetricsPath   string                    `yaml:"metrics_path"`
}

type PrometheusConfig struct {
	Global struct {
		ScrapeInterval     string `yaml:"scrape_interval"`
		EvaluationInterval string `yaml:"evaluation_interval"`
	} `yaml:"global"`
	ScrapeConfigs []*PrometheusScrapeConfig `yaml:"scrape_configs"`
}

// newPrometheusConfig returns a config scraping the node at [endpoint].
func newPrometheusConfig(endpoint string) (*PrometheusConfig, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: endpoint %q has no host", ErrInvalidInput, endpoint)
	}
	var c PrometheusConfig
	c.Global.ScrapeInterval = "15s"
	c.Global.EvaluationInterval = "15s"
	c.ScrapeConfigs = []*PrometheusScrapeConfig{
		{
			JobName: "vaultd",
			StaticConfigs: []*PrometheusStaticConfig{
				{
					Targets: []string{u.Host},
				},
			},
			MetricsPath: rpc.MetricsEndpoint,
		},
	}
	return &c, nil
}

var prometheusGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a prometheus config scraping the current endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, err := getConfigValue(cmd, "endpoint", true)
		if err != nil {
			return err
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		c, err := newPrometheusConfig(endpoint)
		if err != nil {
			return err
		}
		yamlData, err := yaml.Marshal(c)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, yamlData, 0o600); err != nil {
			return err
		}
		fmt.Println("Prometheus config written to: " + out)
		return nil
	},
}

func init() {
	prometheusGenerateCmd.Flags().String("out", "prometheus.yaml", "File to write the config to")
	prometheusCmd.AddCommand(prometheusGenerateCmd)
	rootCmd.AddCommand(prometheusCmd)
}
