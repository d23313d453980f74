// Package health serves liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"redis": redis.Healthcheck(client),
//	}))
//
// Probes answer plain "OK" or "Service Unavailable". Clients sending
// Accept: application/json, or ?format=json, get a per-check report.
package health
