package models

const (
	CategoryHat     = "hat"
	CategoryGlasses = "glasses"
	CategoryShirt   = "shirt"
)

type StoreItem struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`
	Price    int    `bson:"price" json:"price"`
	IconName string `bson:"icon_name" json:"iconName"`
}
