package types

type FoodType string

const (
	FoodTypeVegetarian    FoodType = "Vegetarian"
	FoodTypeNonVegetarian FoodType = "Non-Vegetarian"
	FoodTypeVegan         FoodType = "Vegan"
)

var FoodTypes = []FoodType{FoodTypeVegetarian, FoodTypeNonVegetarian, FoodTypeVegan}

func (t FoodType) Valid() bool {
	for _, v := range FoodTypes {
		if v == t {
			return true
		}
	}
	return false
}

type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnacks    MealType = "Snacks"
)

var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnacks}

func (t MealType) Valid() bool {
	for _, v := range MealTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Listing is one food donation unit. ID is assigned by the store on insert
// and never written afterwards.
type Listing struct {
	ID           int64    `db:"Food_ID" json:"id" form:"-"`
	Name         string   `db:"Food_Name" json:"name" form:"food_name"`
	Quantity     int      `db:"Quantity" json:"quantity" form:"quantity"`
	ExpiryDate   Date     `db:"Expiry_Date" json:"expiryDate" form:"expiry_date"`
	ProviderID   int64    `db:"Provider_ID" json:"providerId" form:"provider_id"`
	ProviderType string   `db:"Provider_Type" json:"providerType" form:"provider_type"`
	Location     string   `db:"Location" json:"location" form:"location"`
	FoodType     FoodType `db:"Food_Type" json:"foodType" form:"food_type"`
	MealType     MealType `db:"Meal_Type" json:"mealType" form:"meal_type"`
}

// FilterAll is the filter value meaning "no constraint on this column".
const FilterAll = "All"

type ListingFilter struct {
	Location     string `form:"location" json:"location,omitempty"`
	ProviderType string `form:"provider_type" json:"providerType,omitempty"`
	FoodType     string `form:"food_type" json:"foodType,omitempty"`
}

type ListingFilterOptions struct {
	Locations     []string `json:"locations"`
	ProviderTypes []string `json:"providerTypes"`
	FoodTypes     []string `json:"foodTypes"`
}

// ListingUpdate carries the only two fields that may change after insert.
// Quantity 0 is allowed and means the listing is exhausted.
type ListingUpdate struct {
	Quantity   int  `form:"quantity" json:"quantity"`
	ExpiryDate Date `form:"expiry_date" json:"expiryDate"`
}

// MutationResult reports what an update or delete touched. Acting on an id
// that no longer exists is not an error; Found reports it instead.
type MutationResult struct {
	ID           int64 `json:"id"`
	RowsAffected int64 `json:"rowsAffected"`
}

func (r MutationResult) Found() bool {
	return r.RowsAffected > 0
}
