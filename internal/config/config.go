package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/decision-report-api/internal/domain"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Render        Render        `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Ingestion     Ingestion     `mapstructure:",squash"`
	IngestionSync IngestionSync `mapstructure:",squash"`
	Policy        Policy        `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	Email        string        `mapstructure:"auth_email"`
	PasswordHash string        `mapstructure:"auth_password_hash"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

type Ingestion struct {
	DataDir    string   `mapstructure:"ingestion_data_dir"`
	Passwords  []string `mapstructure:"ingestion_passwords"`
	Extensions []string `mapstructure:"ingestion_extensions"`
}

type IngestionSync struct {
	CronSchedule      string `mapstructure:"ingestion_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"ingestion_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"ingestion_sync_enabled"`
}

// Policy espelha domain.Policy para permitir sobrescrever as constantes por ambiente
type Policy struct {
	ConservativeRate       float64 `mapstructure:"policy_conservative_rate"`
	ModerateRate           float64 `mapstructure:"policy_moderate_rate"`
	AggressiveRate         float64 `mapstructure:"policy_aggressive_rate"`
	RiskyAssetRate         float64 `mapstructure:"policy_risky_asset_rate"`
	StableAssetRate        float64 `mapstructure:"policy_stable_asset_rate"`
	RiskyAssetFraction     float64 `mapstructure:"policy_risky_asset_fraction"`
	StableAssetFraction    float64 `mapstructure:"policy_stable_asset_fraction"`
	KeepMultiplier         float64 `mapstructure:"policy_keep_multiplier"`
	SaleMultiplier         float64 `mapstructure:"policy_sale_multiplier"`
	SellPassiveRate        float64 `mapstructure:"policy_sell_passive_rate"`
	StrongBuyFactor        float64 `mapstructure:"policy_strong_buy_factor"`
	CoverageLowPct         float64 `mapstructure:"policy_coverage_low_pct"`
	CoverageMediumPct      float64 `mapstructure:"policy_coverage_medium_pct"`
	DeficitTolerance       float64 `mapstructure:"policy_deficit_tolerance"`
	InstallmentCautionPct  float64 `mapstructure:"policy_installment_caution_pct"`
	InstallmentHighPct     float64 `mapstructure:"policy_installment_high_pct"`
	VolatileShare          float64 `mapstructure:"policy_volatile_share"`
	IlliquidShare          float64 `mapstructure:"policy_illiquid_share"`
	CapitalSufficiency     float64 `mapstructure:"policy_capital_sufficiency"`
	ReferenceMonthlyIncome float64 `mapstructure:"policy_reference_monthly_income"`
	TrendWindow            int     `mapstructure:"policy_trend_window"`
	DefaultPlanYears       int     `mapstructure:"policy_default_plan_years"`
	DefaultPlanRate        float64 `mapstructure:"policy_default_plan_rate"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/decision_report?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_EMAIL", "admin@localhost")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("INGESTION_DATA_DIR", "data")
	viper.SetDefault("INGESTION_PASSWORDS", "")
	viper.SetDefault("INGESTION_EXTENSIONS", ".xlsx,.xlsm,.csv")

	viper.SetDefault("INGESTION_SYNC_CRON", "0 2 * * *")      // Todos os dias às 2h da manhã
	viper.SetDefault("INGESTION_SYNC_MAX_CONCURRENT_JOBS", 2) // 2 arquivos lidos em paralelo
	viper.SetDefault("INGESTION_SYNC_ENABLED", true)

	p := domain.DefaultPolicy()
	viper.SetDefault("POLICY_CONSERVATIVE_RATE", p.ConservativeRate)
	viper.SetDefault("POLICY_MODERATE_RATE", p.ModerateRate)
	viper.SetDefault("POLICY_AGGRESSIVE_RATE", p.AggressiveRate)
	viper.SetDefault("POLICY_RISKY_ASSET_RATE", p.RiskyAssetRate)
	viper.SetDefault("POLICY_STABLE_ASSET_RATE", p.StableAssetRate)
	viper.SetDefault("POLICY_RISKY_ASSET_FRACTION", p.RiskyAssetFraction)
	viper.SetDefault("POLICY_STABLE_ASSET_FRACTION", p.StableAssetFraction)
	viper.SetDefault("POLICY_KEEP_MULTIPLIER", p.KeepMultiplier)
	viper.SetDefault("POLICY_SALE_MULTIPLIER", p.SaleMultiplier)
	viper.SetDefault("POLICY_SELL_PASSIVE_RATE", p.SellPassiveRate)
	viper.SetDefault("POLICY_STRONG_BUY_FACTOR", p.StrongBuyFactor)
	viper.SetDefault("POLICY_COVERAGE_LOW_PCT", p.CoverageLowPct)
	viper.SetDefault("POLICY_COVERAGE_MEDIUM_PCT", p.CoverageMediumPct)
	viper.SetDefault("POLICY_DEFICIT_TOLERANCE", p.DeficitTolerance)
	viper.SetDefault("POLICY_INSTALLMENT_CAUTION_PCT", p.InstallmentCautionPct)
	viper.SetDefault("POLICY_INSTALLMENT_HIGH_PCT", p.InstallmentHighPct)
	viper.SetDefault("POLICY_VOLATILE_SHARE", p.VolatileShare)
	viper.SetDefault("POLICY_ILLIQUID_SHARE", p.IlliquidShare)
	viper.SetDefault("POLICY_CAPITAL_SUFFICIENCY", p.CapitalSufficiency)
	viper.SetDefault("POLICY_REFERENCE_MONTHLY_INCOME", p.ReferenceMonthlyIncome)
	viper.SetDefault("POLICY_TREND_WINDOW", p.TrendWindow)
	viper.SetDefault("POLICY_DEFAULT_PLAN_YEARS", p.DefaultPlanYears)
	viper.SetDefault("POLICY_DEFAULT_PLAN_RATE", p.DefaultPlanRate)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Segredos do Render sobrescrevem apenas o que não veio do ambiente
	if config.Render.ServiceID != "" {
		secrets, err := NewRenderClient(config).ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		config.ApplySecrets(secrets)
	}

	config.Finalize()

	return config, nil
}

// ApplySecrets preenche credenciais ausentes a partir de um cofre de segredos
func (c *Config) ApplySecrets(secrets map[string]string) {
	if v, ok := secrets["auth_secret"]; ok && (c.Auth.Secret == "" || c.Auth.Secret == "your_secret_key") {
		c.Auth.Secret = strings.TrimSpace(v)
	}
	if v, ok := secrets["auth_password_hash"]; ok && c.Auth.PasswordHash == "" {
		c.Auth.PasswordHash = strings.TrimSpace(v)
	}
	if v, ok := secrets["ingestion_passwords"]; ok && len(c.Ingestion.Passwords) == 0 {
		c.Ingestion.Passwords = splitList(v)
	}
}

// Finalize deriva os campos calculados e limpa listas vindas do ambiente
func (c *Config) Finalize() {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
	c.Ingestion.Passwords = cleanList(c.Ingestion.Passwords)
	c.Ingestion.Extensions = cleanList(c.Ingestion.Extensions)
	c.Server.AllowedOrigins = cleanList(c.Server.AllowedOrigins)
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
}

// ToPolicy converte a configuração nas constantes de negócio. Valores zerados
// ou negativos mantêm o padrão.
func (c *Config) ToPolicy() domain.Policy {
	p := domain.DefaultPolicy()
	cp := c.Policy

	overrides := []struct {
		dst *float64
		src float64
	}{
		{&p.ConservativeRate, cp.ConservativeRate},
		{&p.ModerateRate, cp.ModerateRate},
		{&p.AggressiveRate, cp.AggressiveRate},
		{&p.RiskyAssetRate, cp.RiskyAssetRate},
		{&p.StableAssetRate, cp.StableAssetRate},
		{&p.RiskyAssetFraction, cp.RiskyAssetFraction},
		{&p.StableAssetFraction, cp.StableAssetFraction},
		{&p.KeepMultiplier, cp.KeepMultiplier},
		{&p.SaleMultiplier, cp.SaleMultiplier},
		{&p.SellPassiveRate, cp.SellPassiveRate},
		{&p.StrongBuyFactor, cp.StrongBuyFactor},
		{&p.CoverageLowPct, cp.CoverageLowPct},
		{&p.CoverageMediumPct, cp.CoverageMediumPct},
		{&p.DeficitTolerance, cp.DeficitTolerance},
		{&p.InstallmentCautionPct, cp.InstallmentCautionPct},
		{&p.InstallmentHighPct, cp.InstallmentHighPct},
		{&p.VolatileShare, cp.VolatileShare},
		{&p.IlliquidShare, cp.IlliquidShare},
		{&p.CapitalSufficiency, cp.CapitalSufficiency},
		{&p.ReferenceMonthlyIncome, cp.ReferenceMonthlyIncome},
		{&p.DefaultPlanRate, cp.DefaultPlanRate},
	}
	for _, o := range overrides {
		if o.src > 0 {
			*o.dst = o.src
		}
	}

	if cp.TrendWindow > 0 {
		p.TrendWindow = cp.TrendWindow
	}
	if cp.DefaultPlanYears > 0 {
		p.DefaultPlanYears = cp.DefaultPlanYears
	}

	return p
}

func splitList(v string) []string {
	return cleanList(strings.Split(v, ","))
}

func cleanList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
