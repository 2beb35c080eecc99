package emission

// Physical constants in SI units (CODATA 2018 exact values).
const (
	// PlanckConstant is h in J s.
	PlanckConstant = 6.62607015e-34

	// BoltzmannConstant is k in J/K.
	BoltzmannConstant = 1.380649e-23

	// SpeedOfLight is c in m/s.
	SpeedOfLight = 2.99792458e8
)

// wienAlpha is the dimensionless root of x = 3(1 - e^-x). The Planck
// curve B_nu(T) peaks at nu = wienAlpha * k * T / h.
const wienAlpha = 2.8214393721220787
