package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Six-field cron expressions for the background passes.
	ActivationSchedule string
	OverdueSchedule    string
	SummarySchedule    string
}
