package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env                 string // application environment (e.g. "dev", "prod")
    Port                string // HTTP port to listen on
    MongoURL            string // MongoDB connection string
    DBName              string // database name
    JWTSecret           string // secret used to sign session tokens
    TokenTTLDays        int    // session token time‑to‑live in days
    BcryptCost          int    // bcrypt cost for password hashing
    CORSOrigins         string // comma separated list of allowed origins
    StripeAPIKey        string // Stripe secret key; empty disables checkout
    StripeWebhookSecret string // Stripe webhook signing secret; empty disables signature checks
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Everything else has
// a default so a bare development environment still boots.
func Load() Config {
    return Config{
        Env:                 getenv("APP_ENV", "dev"),           // environment (dev/test/prod)
        Port:                getenv("APP_PORT", "8080"),         // port to bind the HTTP server
        MongoURL:            must("MONGO_URL"),                  // MongoDB connection string
        DBName:              must("DB_NAME"),                    // database name
        JWTSecret:           must("JWT_SECRET"),                 // secret used for signing session tokens
        TokenTTLDays:        atoiDefault("TOKEN_TTL_DAYS", 7),   // token validity in days
        BcryptCost:          atoiDefault("BCRYPT_COST", 12),     // bcrypt cost factor
        CORSOrigins:         getenv("CORS_ORIGINS", "*"),        // allowed cross‑origin hosts
        StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),        // payment provider key (optional)
        StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"), // webhook signing secret (optional)
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// atoiDefault reads an integer environment variable, falling back to def
// when the variable is unset.  An unparsable value is a configuration
// mistake and aborts startup like a missing required variable would.
func atoiDefault(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
