package domain

type Direction string

const (
	DirectionPreWedding  Direction = "Pre-Wedding"
	DirectionPostWedding Direction = "Post-Wedding"
)

type Vibe string

const (
	VibeRelaxing  Vibe = "Relaxing & Wellness"
	VibeAdventure Vibe = "High Adventure"
	VibeLuxury    Vibe = "Luxury & Comfort"
	VibeCultural  Vibe = "Cultural & Foodie"
	VibeParty     Vibe = "Nightlife & Social"
	VibeNature    Vibe = "Wildlife & Nature"
)

type Activity string

const (
	ActivityZipLining     Activity = "Zip Lining / Canopy Tours"
	ActivitySportFishing  Activity = "Sport Fishing"
	ActivityNightTours    Activity = "Bug / Night Tours"
	ActivityWhaleWatching Activity = "Whale Watching"
	ActivityTurtles       Activity = "Turtle Sighting"
	ActivityBirdWatching  Activity = "Flora & Fauna / Bird Watching"
	ActivityScubaDiving   Activity = "Scuba Diving"
	ActivitySnorkeling    Activity = "Snorkeling"
	ActivitySurfing       Activity = "Surfing"
	ActivityHiking        Activity = "Hiking / Trekking"
	ActivityHotSprings    Activity = "Hot Springs / Mud Baths"
	ActivityCoffeeTours   Activity = "Coffee / Chocolate Tours"
	ActivityRafting       Activity = "White Water Rafting"
	ActivityRappelling    Activity = "Waterfall Rappelling"
	ActivityATV           Activity = "ATV / Off-Road Tours"
	ActivityHorseback     Activity = "Horseback Riding"
	ActivityMangroves     Activity = "Mangrove Boat Tours"
	ActivityBridges       Activity = "Hanging Bridges"
	ActivityCatamaran     Activity = "Catamaran / Sunset Sail"
)

// Region identifies a destination area. RegionAIDecide is the "let the
// planner choose" sentinel and is never stored alongside a concrete region.
type Region string

const (
	RegionAIDecide      Region = "AI_DECIDE"
	RegionManuelAntonio Region = "Manuel Antonio"
	RegionLaFortuna     Region = "La Fortuna"
	RegionMonteverde    Region = "Monteverde"
	RegionGuanacaste    Region = "Guanacaste"
	RegionSantaTeresa   Region = "Santa Teresa"
	RegionOsa           Region = "Osa Peninsula"
	RegionPuertoViejo   Region = "Puerto Viejo"
)

// BudgetLevel tiers are ordered from cheapest to most expensive.
type BudgetLevel string

const (
	BudgetFriendly    BudgetLevel = "Budget Friendly"
	BudgetModerate    BudgetLevel = "Moderate"
	BudgetHighEnd     BudgetLevel = "High End"
	BudgetUltraLuxury BudgetLevel = "Ultra Luxury"
)

type TravelingParty string

const (
	PartySolo    TravelingParty = "Solo"
	PartyCouple  TravelingParty = "Couple"
	PartyFamily  TravelingParty = "Family with Kids"
	PartyFriends TravelingParty = "Group of Friends"
)
