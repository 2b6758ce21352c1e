package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	CORS     CORSConfig
	Redis    RedisConfig
	Mail     MailConfig
	Storage  StorageConfig
	VNPay    VNPayConfig
	Booking  BookingConfig
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	TimeZone     string
	MaxIdleConns int
	MaxOpenConns int
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port            string
	GinMode         string
	LogLevel        string
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MailConfig holds SMTP settings. An empty Host disables delivery and the
// mailer only logs outgoing messages.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type StorageConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicBase string
}

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PayURL     string
	ReturnURL  string
	Expiry     time.Duration
}

type BookingConfig struct {
	SlotDuration    time.Duration
	HorizonDays     int
	VerificationTTL time.Duration
	PaymentTimeout  time.Duration
	SweepInterval   time.Duration
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("Failed to read config file: %v", err)
		}
	}

	return &Config{
		Database: DatabaseConfig{
			Driver:       v.GetString("db.driver"),
			Host:         v.GetString("db.host"),
			Port:         v.GetString("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			Database:     v.GetString("db.name"),
			TimeZone:     v.GetString("db.timezone"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
		JWT: JWTConfig{
			AccessSecret:       v.GetString("jwt.access_secret"),
			RefreshSecret:      v.GetString("jwt.refresh_secret"),
			AccessTokenExpiry:  parseDuration(v.GetString("access_token_expiry"), 15*time.Minute),
			RefreshTokenExpiry: parseDuration(v.GetString("refresh_token_expiry"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:            v.GetString("port"),
			GinMode:         v.GetString("gin_mode"),
			LogLevel:        v.GetString("log_level"),
			ShutdownTimeout: parseDuration(v.GetString("shutdown_timeout"), 30*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(v.GetString("allowed_origins")),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Mail: MailConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			Username: v.GetString("smtp.username"),
			Password: v.GetString("smtp.password"),
			From:     v.GetString("smtp.from"),
		},
		Storage: StorageConfig{
			Endpoint:   v.GetString("minio.endpoint"),
			AccessKey:  v.GetString("minio.access_key"),
			SecretKey:  v.GetString("minio.secret_key"),
			Bucket:     v.GetString("minio.bucket"),
			UseSSL:     v.GetBool("minio.use_ssl"),
			PublicBase: v.GetString("minio.public_base"),
		},
		VNPay: VNPayConfig{
			TmnCode:    v.GetString("vnpay.tmn_code"),
			HashSecret: v.GetString("vnpay.hash_secret"),
			PayURL:     v.GetString("vnpay.pay_url"),
			ReturnURL:  v.GetString("vnpay.return_url"),
			Expiry:     parseDuration(v.GetString("vnpay.expiry"), 15*time.Minute),
		},
		Booking: BookingConfig{
			SlotDuration:    parseDuration(v.GetString("booking.slot_duration"), 20*time.Minute),
			HorizonDays:     v.GetInt("booking.horizon_days"),
			VerificationTTL: parseDuration(v.GetString("booking.verification_ttl"), 15*time.Minute),
			PaymentTimeout:  parseDuration(v.GetString("booking.payment_timeout"), 30*time.Minute),
			SweepInterval:   parseDuration(v.GetString("booking.sweep_interval"), time.Minute),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "hospital_booking")
	v.SetDefault("db.timezone", "Asia/Ho_Chi_Minh")
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.max_open_conns", 100)

	v.SetDefault("jwt.access_secret", "your-access-secret-key")
	v.SetDefault("jwt.refresh_secret", "your-refresh-secret-key")
	v.SetDefault("access_token_expiry", "15m")
	v.SetDefault("refresh_token_expiry", "168h")

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", "30s")
	v.SetDefault("allowed_origins", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "no-reply@hospital.local")

	v.SetDefault("minio.endpoint", "127.0.0.1:9000")
	v.SetDefault("minio.bucket", "test-results")
	v.SetDefault("minio.public_base", "http://127.0.0.1:9000")

	v.SetDefault("vnpay.pay_url", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	v.SetDefault("vnpay.return_url", "http://localhost:8080/payments/vnpay/return")
	v.SetDefault("vnpay.expiry", "15m")

	v.SetDefault("booking.slot_duration", "20m")
	v.SetDefault("booking.horizon_days", 30)
	v.SetDefault("booking.verification_ttl", "15m")
	v.SetDefault("booking.payment_timeout", "30m")
	v.SetDefault("booking.sweep_interval", "1m")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Warnf("Invalid duration format '%s', using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
