// File: propread/example/main.go
package main

import (
	"embed"
	"fmt"
	"log"
	"time"

	propread "github.com/studio-testautomation/properties-reader"
)

//go:embed app.properties
var resources embed.FS

type testRunConfig struct {
	BaseURL     string           `property:"run.base.url"`
	Retries     int              `property:"run.retries" default:"2"`
	Timeout     time.Duration    `property:"run.timeout" default:"30s"`
	Headless    bool             `property:"run.headless"`
	BrowserType propread.Browser `property:"browser.name" default:"chrome" parser:"browser"`
}

func (testRunConfig) Resource() string { return "app.properties" }

func main() {
	reader := propread.NewBuilder().
		WithFS(resources).
		WithParser("browser", propread.BrowserParser()).
		Build()

	var cfg testRunConfig
	if err := reader.Bind(&cfg); err != nil {
		log.Fatalf("failed to bind configuration: %v", err)
	}

	fmt.Printf("base url: %s\n", cfg.BaseURL)
	fmt.Printf("retries:  %d\n", cfg.Retries)
	fmt.Printf("timeout:  %s\n", cfg.Timeout)
	fmt.Printf("headless: %t\n", cfg.Headless)
	fmt.Printf("browser:  %s\n", cfg.BrowserType)
}
