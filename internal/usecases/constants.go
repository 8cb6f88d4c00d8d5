package usecases

const (
	// Seconds before a recorded oracle price is considered stale.
	PriceStalenessWindow int64 = 3600

	// Seconds of pool silence before its reserves may be reclaimed.
	PoolInactivityWindow int64 = 15_768_000

	// Oracle prices are quoted in micro-USD per whole token.
	UsdMicroScale uint64 = 1_000_000

	// Tokens are ledgered in base units of 10^-9.
	TokenBaseScale uint64 = 1_000_000_000

	// Fixed amount paid out when an NFT is redeemed against the pool.
	RedemptionUnit uint64 = 1_000_000_000

	// Basis point denominator.
	MaxBps uint16 = 10_000

	// Rarity scoring bounds.
	RarityBaseScore   uint16 = 10
	RarityScoreCap    uint16 = 1000
	FusionBoostCap    uint16 = 200
	FusedRarityCap    uint16 = 2000
	ZeroWeightBonus   uint16 = 50
	ScarcityThreshold uint32 = 100
)
