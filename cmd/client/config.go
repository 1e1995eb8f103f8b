package main

// Config defines the client-side environment variables.
type Config struct {
	ServerURL string `env:"CHAT_SERVER_URL,default=ws://localhost:8080/ws"`
	Identity  string `env:"CHAT_IDENTITY"`
	Channel   string `env:"CHAT_CHANNEL,default=General"`
	LogLevel  string `env:"LOG_LEVEL,default=warn"`
}
