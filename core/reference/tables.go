package reference

// row holds one value per wrap type, in wrapTypes order:
// full, partial, commercial sides, hood, roof, trunk, decals basic, decals complex.
// A zero means the panel does not exist on that vehicle.
type row [8]float64

// Square feet of vinyl per vehicle and wrap type
var baseAreaRows = map[VehicleCategory]row{
	CompactSedan:    {180, 90, 70, 22, 27, 18, 5, 15},
	MidsizeSedan:    {200, 100, 80, 25, 30, 20, 5, 15},
	FullsizeSedan:   {220, 110, 90, 28, 33, 22, 5, 15},
	CompactSUV:      {230, 115, 95, 27, 32, 0, 5, 15},
	MidsizeSUV:      {250, 125, 100, 30, 35, 0, 5, 15},
	FullsizeSUV:     {280, 140, 115, 33, 38, 0, 5, 15},
	PickupShortBed:  {260, 130, 110, 32, 37, 0, 5, 15},
	PickupLongBed:   {300, 150, 130, 35, 40, 0, 5, 15},
	CargoVan:        {300, 150, 130, 0, 35, 0, 5, 15},
	SprinterVan:     {320, 160, 140, 0, 35, 0, 5, 15},
	Coupe:           {180, 90, 70, 20, 25, 18, 5, 15},
	Hatchback:       {190, 95, 75, 22, 27, 20, 5, 15},
	Motorcycle:      {50, 25, 0, 0, 0, 0, 3, 8},
	CommercialVan:   {320, 160, 140, 0, 35, 0, 5, 15},
	CommercialTruck: {350, 175, 150, 40, 45, 0, 5, 15},
	BoxTruckSmall:   {450, 225, 180, 0, 45, 0, 8, 20},
	BoxTruckLarge:   {550, 275, 220, 0, 55, 0, 10, 25},
	Semi:            {800, 400, 300, 0, 60, 0, 10, 25},
}

// Installer hours per vehicle and wrap type
var baseHoursRows = map[VehicleCategory]row{
	CompactSedan:    {14, 7, 5.5, 1.75, 2.25, 1.5, 0.5, 1.5},
	MidsizeSedan:    {16, 8, 6, 2, 2.5, 1.75, 0.5, 1.5},
	FullsizeSedan:   {18, 9, 6.5, 2.25, 2.75, 2, 0.5, 1.5},
	CompactSUV:      {18, 9, 7.5, 2.25, 2.75, 0, 0.5, 1.5},
	MidsizeSUV:      {20, 10, 8, 2.5, 3, 0, 0.5, 1.5},
	FullsizeSUV:     {22, 11, 9, 2.75, 3.25, 0, 0.5, 1.5},
	PickupShortBed:  {20, 10, 8.5, 2.75, 3.25, 0, 0.5, 1.5},
	PickupLongBed:   {24, 12, 10, 3, 3.5, 0, 0.5, 1.5},
	CargoVan:        {24, 12, 10, 0, 3.5, 0, 0.5, 1.5},
	SprinterVan:     {26, 13, 11, 0, 4, 0, 0.5, 1.5},
	Coupe:           {14, 7, 5, 1.5, 2, 1.5, 0.5, 1.5},
	Hatchback:       {15, 7.5, 5.5, 1.75, 2.25, 1.75, 0.5, 1.5},
	Motorcycle:      {8, 4, 0, 0, 0, 0, 0.25, 0.75},
	CommercialVan:   {26, 13, 11, 0, 4, 0, 0.5, 1.5},
	CommercialTruck: {28, 14, 12, 3.5, 4.5, 0, 0.5, 1.5},
	BoxTruckSmall:   {35, 17.5, 14, 0, 4.5, 0, 1, 2},
	BoxTruckLarge:   {45, 22.5, 18, 0, 5.5, 0, 1, 2},
	Semi:            {60, 30, 24, 0, 6, 0, 1, 2},
}

// Minimum purchasable linear feet. Decals are 0: the caller enters the quantity.
var minLinearFeet = map[WrapType]float64{
	FullWrap:        50,
	PartialWrap:     25,
	CommercialSides: 30,
	Hood:            10,
	Roof:            10,
	Trunk:           10,
	DecalsBasic:     0,
	DecalsComplex:   0,
}

// Minimum billable labor hours
var minLaborHours = map[WrapType]float64{
	FullWrap:        12,
	PartialWrap:     6,
	CommercialSides: 8,
	Hood:            1,
	Roof:            1,
	Trunk:           1,
	DecalsBasic:     0.5,
	DecalsComplex:   1,
}
