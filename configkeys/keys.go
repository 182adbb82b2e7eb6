package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigCacherPrefix = ConfigPrefix + delimiter + "cacher"

	ConfigCacherComputationPrefix  = ConfigCacherPrefix + delimiter + "computation"
	ConfigCacherComputationLatency = ConfigCacherComputationPrefix + delimiter + "latency"

	ConfigCacherTablePrefix  = ConfigCacherPrefix + delimiter + "table"
	ConfigCacherTableBackend = ConfigCacherTablePrefix + delimiter + "backend"

	ConfigCacherLogPrefix = ConfigCacherPrefix + delimiter + "log"
	ConfigCacherLogLevel  = ConfigCacherLogPrefix + delimiter + "level"
)
