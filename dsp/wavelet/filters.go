package wavelet

// Daubechies scaling filters (synthesis low-pass, rec_lo order) indexed by the
// number of vanishing moments. Values solve the orthonormality and vanishing
// moment conditions to double precision.
var daubechiesScaling = map[int][]float64{
	1: {
		0.7071067811865476,
		0.7071067811865476,
	},
	2: {
		0.48296291314453416,
		0.8365163037378079,
		0.2241438680420134,
		-0.12940952255126037,
	},
	3: {
		0.33267055295008263,
		0.8068915093110925,
		0.45987750211849154,
		-0.13501102001025458,
		-0.08544127388202666,
		0.03522629188570953,
	},
	4: {
		0.2303778133088965,
		0.7148465705529157,
		0.6308807679298589,
		-0.027983769416859854,
		-0.18703481171909309,
		0.030841381835560764,
		0.0328830116668852,
		-0.010597401785069032,
	},
	5: {
		0.16010239797419293,
		0.6038292697971896,
		0.7243085284377729,
		0.13842814590132074,
		-0.24229488706638203,
		-0.032244869584638375,
		0.07757149384004572,
		-0.006241490212798274,
		-0.012580751999081999,
		0.0033357252854737712,
	},
}
