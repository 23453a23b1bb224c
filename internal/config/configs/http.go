package configs

// HTTP defines configuration for the ledger's HTTP API server.
type HTTP struct {
	// Port is the TCP port the server listens on, on all interfaces.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
