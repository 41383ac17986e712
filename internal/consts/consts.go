package consts

const (
	RATIO_FLOOR    = 1e-12 // Lowest stage ratio and divider denominator
	SENTINEL_DB    = -200  // Stands in for 20*log10 of a non-positive gain (dB)
	LOAD_MULTIPLE  = 100   // Const-output load relative to stage resistance
	MAX_STAGES     = 16    // Largest accepted stage count
	DEFAULT_STAGES = 8
)
