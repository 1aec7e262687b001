package models

import "time"

// Person role tags. The read API buckets people by these values.
const (
	RoleCoordinator = "coordinator"
	RoleTeam        = "team"
	RoleFaculty     = "faculty"
)

// Activity log entry types.
const (
	ActivityBid     = "bid"
	ActivityPoll    = "poll"
	ActivityEnquiry = "enquiry"
)

// Player represents a developer up for auction. Rows are created at seed
// time and mutated only through bid placement.
type Player struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(128);not null" json:"name"`
	Nickname      string  `gorm:"type:varchar(64)" json:"nickname"`
	Role          string  `gorm:"type:varchar(64)" json:"role"`
	BasePrice     int     `gorm:"not null" json:"base_price"`
	CurrentBid    int     `gorm:"not null" json:"current_bid"`
	HighestBidder *string `gorm:"type:varchar(128)" json:"highest_bidder"`
	ImageURL      string  `gorm:"type:varchar(512)" json:"image_url"`
	Bio           string  `json:"bio"`
	Skills        string  `gorm:"type:varchar(256)" json:"skills"`
	TotalBids     int     `gorm:"not null;default:0" json:"total_bids"`
}

// Bid is an immutable record of one accepted raise on a player's price.
type Bid struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerID   uint      `gorm:"index;not null" json:"player_id"`
	BidderName string    `gorm:"type:varchar(128);not null" json:"bidder_name"`
	Amount     int       `gorm:"not null" json:"bid_amount"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// Enquiry is a public contact-form submission. Read-only once created.
type Enquiry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Email     string    `gorm:"type:varchar(256);not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// PollOption is a votable team with a counter. Votes are incremented by the
// poll service and zeroed by the daily reset.
type PollOption struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamName string `gorm:"type:varchar(128);uniqueIndex;not null" json:"team_name"`
	Votes    int    `gorm:"not null;default:0" json:"votes"`
}

// Person is a coordinator, bidding team, or faculty member shown on the
// event pages. Created at seed time; read-only via the API.
type Person struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:varchar(128);not null" json:"name"`
	Role         string  `gorm:"type:varchar(32);index;not null" json:"role"`
	Email        string  `gorm:"type:varchar(256)" json:"email"`
	Bio          string  `json:"bio"`
	ImageURL     string  `gorm:"type:varchar(512)" json:"image_url"`
	SocialHandle *string `gorm:"type:varchar(64)" json:"social_handle"`
}

// ActivityLogEntry is one append-only audit record of a bid, poll, or
// enquiry event.
type ActivityLogEntry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string    `gorm:"type:varchar(16);not null" json:"type"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// AuctionSetting is the singleton settings row (id=1) holding the global
// auction end time.
type AuctionSetting struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	EndTime time.Time `gorm:"not null" json:"end_time"`
}

func (Player) TableName() string           { return "players" }
func (Bid) TableName() string              { return "bids" }
func (Enquiry) TableName() string          { return "enquiries" }
func (PollOption) TableName() string       { return "poll" }
func (Person) TableName() string           { return "people" }
func (ActivityLogEntry) TableName() string { return "activity_log" }
func (AuctionSetting) TableName() string   { return "settings" }
