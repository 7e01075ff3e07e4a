package config

type InternalConfig struct {
	App         App
	CMS         CMS
	Reservation Reservation
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

// CMS points at the external row store every booking collection lives in.
type CMS struct {
	BaseUrl           string
	RequestsPerSecond int
}

type Reservation struct {
	// LockBackend selects the lock table: "memory" or "redis".
	LockBackend string
	// LockTTLInMinute bounds an uncommitted claim; 0 means no lease.
	LockTTLInMinute int
}
