package config

import "os"

type Config struct {
	Region          string
	LogLevel        string
	FootballToken   string
	FootballBaseURL string
	CompetitionID   string
	RPCURL          string
	ContractAddress string
	ContractABI     string
	OracleSecretID  string
	// OraclePrivateKey is the local-testing fallback, used only when no
	// secret id is configured.
	OraclePrivateKey string
	AgentID          string
	AgentAliasID     string
	TelegramToken    string
	TriggerSchedule  string
}

func New() *Config {
	return &Config{
		Region:           os.Getenv("REGION"),
		LogLevel:         os.Getenv("LOGLEVEL"),
		FootballToken:    os.Getenv("FOOTBALLAPITOKEN"),
		FootballBaseURL:  getOrDefault("FOOTBALLBASEURL", "https://api.football-data.org/v4"),
		CompetitionID:    getOrDefault("COMPETITIONID", "PL"),
		RPCURL:           os.Getenv("RPCURL"),
		ContractAddress:  os.Getenv("CONTRACTADDRESS"),
		ContractABI:      os.Getenv("CONTRACTABI"),
		OracleSecretID:   os.Getenv("ORACLESECRETID"),
		OraclePrivateKey: os.Getenv("ORACLEPRIVATEKEY"),
		AgentID:          os.Getenv("AGENTID"),
		AgentAliasID:     os.Getenv("AGENTALIASID"),
		TelegramToken:    os.Getenv("TELEGRAMBOTTOKEN"),
		TriggerSchedule:  getOrDefault("TRIGGERSCHEDULE", "0 9 * * *"),
	}
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
