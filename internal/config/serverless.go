package config

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	FunctionName string
	Region       string
	Stage        string
}

// IsLambda detects if the application is running in AWS Lambda
func (s ServerlessConfig) IsLambda() bool {
	return s.FunctionName != ""
}

// DeploymentMode returns the current deployment mode
func (c *Config) DeploymentMode() string {
	if c.Serverless.IsLambda() {
		return "serverless"
	}
	return "server"
}

// AdaptForServerless modifies configuration for a Lambda deployment.
// CloudWatch indexes JSON lines, so the log format is forced to json.
func (c *Config) AdaptForServerless() *Config {
	if !c.Serverless.IsLambda() {
		return c
	}

	c.Log.Format = "json"

	// The deployment package is read-only; only /tmp is writable.
	if c.Database.Driver == DriverSQLite && c.Database.URL == DefaultDatabaseURL {
		c.Database.URL = "sqlite3:///tmp/todos.db"
		c.Database.DSN = "/tmp/todos.db"
	}

	return c
}
