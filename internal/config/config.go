package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is built once at startup
// and passed by reference into every component that talks to the outside.
type Config struct {
	App    AppConfig
	ERP    ERPConfig
	OAuth  OAuthConfig
	Intake IntakeConfig
	Log    LogConfig
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// ERPConfig holds Business Central OData endpoints and identifiers.
//
// Customer reads go through ProdEnvironment while order writes go through
// TestEnvironment.
// TODO: point order creation at the production environment after UAT sign-off.
type ERPConfig struct {
	BaseURL          string
	TenantID         string
	TestEnvironment  string
	ProdEnvironment  string
	Company          string
	CustomerEndpoint string
	OrderEndpoint    string
	DeleteEndpoint   string
}

// OAuthConfig holds the client-credentials token endpoint settings. The
// client id itself arrives per request; only the shared pieces live here.
type OAuthConfig struct {
	TokenURL     string
	Scope        string
	ClientSecret string
}

// IntakeConfig holds basic-auth credentials for the external order-intake
// system consumed by cmd/extract.
type IntakeConfig struct {
	ClientKey    string
	ClientSecret string
	OrdersURL    string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// CustomersURL returns the OData customer query URL with the projection the
// matcher needs.
func (c ERPConfig) CustomersURL() string {
	return fmt.Sprintf("%s/%s/%s/ODataV4/%s/%s?$select=Blocked,No,VAT_Registration_No,Phone_No,Name,E_Mail",
		c.BaseURL, c.TenantID, c.ProdEnvironment, c.Company, c.CustomerEndpoint)
}

// OrdersURL returns the OData sales-order creation URL.
func (c ERPConfig) OrdersURL() string {
	return fmt.Sprintf("%s/%s/%s/ODataV4/%s/%s",
		c.BaseURL, c.TenantID, c.TestEnvironment, c.Company, c.OrderEndpoint)
}

// LineURL returns the URL fragment carried by each sales-line batch request.
// The batch dispatcher resolves it against the same OData root, so only the
// company-relative part is emitted.
func (c ERPConfig) LineURL() string {
	return fmt.Sprintf("%s/%sSalesLines", c.Company, c.OrderEndpoint)
}

// Load loads configuration from config.toml and environment variables.
// Priority (highest to lowest):
//  1. Environment variables with OFG_ prefix (e.g. OFG_OAUTH_CLIENT_SECRET)
//  2. config.toml
//  3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("OFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		ERP: ERPConfig{
			BaseURL:          v.GetString("erp.base_url"),
			TenantID:         v.GetString("erp.tenant_id"),
			TestEnvironment:  v.GetString("erp.test_environment"),
			ProdEnvironment:  v.GetString("erp.prod_environment"),
			Company:          v.GetString("erp.company"),
			CustomerEndpoint: v.GetString("erp.customer_endpoint"),
			OrderEndpoint:    v.GetString("erp.order_endpoint"),
			DeleteEndpoint:   v.GetString("erp.delete_endpoint"),
		},
		OAuth: OAuthConfig{
			TokenURL:     v.GetString("oauth.token_url"),
			Scope:        v.GetString("oauth.scope"),
			ClientSecret: v.GetString("oauth.client_secret"),
		},
		Intake: IntakeConfig{
			ClientKey:    v.GetString("intake.client_key"),
			ClientSecret: v.GetString("intake.client_secret"),
			OrdersURL:    v.GetString("intake.orders_url"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "orderform-gateway")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "2237")

	v.SetDefault("erp.customer_endpoint", "Customer_List")
	v.SetDefault("erp.order_endpoint", "Sales_Order_Excel")

	v.SetDefault("oauth.scope", "https://api.businesscentral.dynamics.com/.default")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
}
