package main

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_SERVICE_NAME" envDefault:"ray-system"`
	LogLevel    string `env:"APP_LOG_LEVEL"`
	SeedUsers   int    `env:"APP_SEED_USERS" envDefault:"50"`
	BcryptCost  int    `env:"APP_BCRYPT_COST" envDefault:"10"`
	SeedPass    string `env:"APP_SEED_PASSWORD" envDefault:"password"`
}
