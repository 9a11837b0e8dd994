package config

// JobsConfig holds cron specs for background maintenance. An empty spec
// disables the job.
type JobsConfig struct {
	PurgeTokensSpec   string // expired and revoked refresh tokens
	PruneContextsSpec string // idle auth contexts
}

func LoadJobsConfig() JobsConfig {
	return JobsConfig{
		PurgeTokensSpec:   envStr("JOB_PURGE_TOKENS", "@every 1h"),
		PruneContextsSpec: envStr("JOB_PRUNE_CONTEXTS", "@every 10m"),
	}
}
