package handlers

import "expvar"

// Counters published under /debug/vars.
var (
	signupsTotal        = expvar.NewInt("signups_total")
	signupConflicts     = expvar.NewInt("signup_conflicts_total")
	signinsTotal        = expvar.NewInt("signins_total")
	signinFailuresTotal = expvar.NewInt("signin_failures_total")
	logoutsTotal        = expvar.NewInt("logouts_total")
)
