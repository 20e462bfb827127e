package domain

// Стоимость действий в очках действия (AP). Defaults for engine.Rules.
const (
	DefaultMaxActionPoints = 5
	CostMove               = 1
	CostWait               = 1
	CostPeek               = 2
	CostShoot              = 3
)

// Параметры восприятия
const (
	FrustumStepDeg    = 0.1  // one frustum ray every 0.1°
	PeekFanDeg        = 45.0 // width of a peek cone
	PeekSamplesPerDeg = 10.0
)
