package configs

// Redis configures the client used for the daily withdrawal-limit
// counters.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// DailyWithdrawalCapCents bounds how much one advertiser may
	// withdraw per UTC day. Zero disables the cap.
	DailyWithdrawalCapCents int64 `env:"DAILY_WITHDRAWAL_CAP_CENTS" envDefault:"500000"`
}
