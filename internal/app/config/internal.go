package config

type InternalConfig struct {
	App    App
	JWT    JWT
	Mailer Mailer
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	EndpointPrefix            string
	Timezone                  string
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeout           int
	SessionExpiryTimeInHours  int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Mailer struct {
	Queue       string
	EmailSender string
}
