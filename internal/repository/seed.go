package repository

import (
	"fmt"
	"time"

	model "auction-backend/internal/models"
	"auction-backend/utils"

	"gorm.io/gorm"
)

// Seed fills empty tables with the demo dataset and ensures the singleton
// settings row exists, defaulting the auction end time to now plus
// defaultDuration. Non-empty tables are left untouched, so running it
// repeatedly never duplicates rows.
func (s *GormStore) Seed(defaultDuration time.Duration) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := seedIfEmpty(tx, &model.Player{}, seedPlayers); err != nil {
			return fmt.Errorf("seed players: %w", err)
		}
		if err := seedIfEmpty(tx, &model.PollOption{}, seedPollOptions); err != nil {
			return fmt.Errorf("seed poll: %w", err)
		}
		if err := seedIfEmpty(tx, &model.Person{}, seedPeople); err != nil {
			return fmt.Errorf("seed people: %w", err)
		}

		var count int64
		if err := tx.Model(&model.AuctionSetting{}).Count(&count).Error; err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
		if count == 0 {
			setting := model.AuctionSetting{ID: 1, EndTime: time.Now().Add(defaultDuration)}
			if err := tx.Create(&setting).Error; err != nil {
				return fmt.Errorf("seed settings: %w", err)
			}
			utils.Info("auction end time seeded", map[string]any{"end_time": setting.EndTime})
		}
		return nil
	})
}

// seedIfEmpty inserts rows only when the target table has none.
func seedIfEmpty[T any](tx *gorm.DB, probe *T, rows []T) error {
	var count int64
	if err := tx.Model(probe).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	// Insert a copy so generated IDs never leak back into the seed dataset.
	batch := append([]T(nil), rows...)
	return tx.Create(&batch).Error
}

func strPtr(s string) *string { return &s }

var seedPlayers = []model.Player{
	{
		ID: 1, Name: "Alex Chen", Nickname: "ByteMaster", Role: "Full Stack Dev",
		BasePrice: 10000, CurrentBid: 10000,
		ImageURL: "https://i.pravatar.cc/300?img=33",
		Bio:      "Full-stack developer with 8+ years experience",
		Skills:   "React,Node.js,AWS,Docker",
	},
	{
		ID: 2, Name: "Sarah Kumar", Nickname: "CodeNinja", Role: "Frontend Dev",
		BasePrice: 12000, CurrentBid: 12000,
		ImageURL: "https://i.pravatar.cc/300?img=47",
		Bio:      "Frontend expert creating beautiful interfaces",
		Skills:   "React,Vue.js,CSS3,Figma",
	},
	{
		ID: 3, Name: "Michael Brown", Nickname: "DataWizard", Role: "Backend Dev",
		BasePrice: 15000, CurrentBid: 15000,
		ImageURL: "https://i.pravatar.cc/300?img=12",
		Bio:      "Backend architect with scalable solutions",
		Skills:   "Python,Django,PostgreSQL",
	},
	{
		ID: 4, Name: "Emma Davis", Nickname: "CloudQueen", Role: "DevOps",
		BasePrice: 11000, CurrentBid: 11000,
		ImageURL: "https://i.pravatar.cc/300?img=45",
		Bio:      "DevOps engineer automating everything",
		Skills:   "AWS,Docker,Kubernetes",
	},
}

var seedPollOptions = []model.PollOption{
	{TeamName: "Java Jesters"},
	{TeamName: "Quantum Coder"},
	{TeamName: "Syntax Samurai"},
	{TeamName: "Logic Luminaries"},
	{TeamName: "Byte Busters"},
	{TeamName: "Python Pioneers"},
	{TeamName: "Code Commanders"},
	{TeamName: "Ruby Renegades"},
	{TeamName: "Data Mavericks"},
}

var seedPeople = []model.Person{
	// Head coordinators
	{
		Name: "Hiya Arya", Role: model.RoleCoordinator, Email: "hiya@battleofbytes.com",
		Bio:      "Promotion & Operation Lead for Battle of Bytes 2.0",
		ImageURL: "https://i.pravatar.cc/300?img=1", SocialHandle: strPtr("@hushhiya"),
	},
	{
		Name: "Ashank Agrawal", Role: model.RoleCoordinator, Email: "ashank@battleofbytes.com",
		Bio:      "Co Tech Lead orchestrating the technical aspects",
		ImageURL: "https://i.pravatar.cc/300?img=2", SocialHandle: strPtr("@ashankagrawal"),
	},
	{
		Name: "Sarthak Sinha", Role: model.RoleCoordinator, Email: "sarthak@battleofbytes.com",
		Bio:      "Design & Social Media Lead crafting the visual identity",
		ImageURL: "https://i.pravatar.cc/300?img=3", SocialHandle: strPtr("@sarthak.sinhahaha"),
	},
	{
		Name: "Manalika Agarwal", Role: model.RoleCoordinator, Email: "manalika@battleofbytes.com",
		Bio:      "Co Tech Lead ensuring seamless execution",
		ImageURL: "https://i.pravatar.cc/300?img=4", SocialHandle: strPtr("@manalika__"),
	},
	{
		Name: "Somya Upadhyay", Role: model.RoleCoordinator, Email: "somya@battleofbytes.com",
		Bio:      "Sponsorship Lead securing partnerships",
		ImageURL: "https://i.pravatar.cc/300?img=50", SocialHandle: strPtr("@__.somyaaaaa__"),
	},
	// Bidding teams
	{
		Name: "Java Jesters", Role: model.RoleTeam, Email: "captains@jesters.com",
		Bio:      "Known for meticulous planning and aggressive bidding strategies.",
		ImageURL: "https://i.pravatar.cc/300?img=5",
	},
	{
		Name: "Quantum Coder", Role: model.RoleTeam, Email: "lead@quantum.dev",
		Bio:      "A mysterious team with deep pockets, focusing on high-potential talent.",
		ImageURL: "https://i.pravatar.cc/300?img=6",
	},
	{
		Name: "Syntax Samurai", Role: model.RoleTeam, Email: "master@samurai.io",
		Bio:      "They strike with precision, waiting for the perfect moment to bid.",
		ImageURL: "https://i.pravatar.cc/300?img=7",
	},
	// Faculty
	{
		Name: "Dr. Priya Sharma", Role: model.RoleFaculty, Email: "p.sharma@college.edu",
		Bio:      "Head Faculty Coordinator overseeing all event logistics.",
		ImageURL: "https://i.pravatar.cc/300?img=60",
	},
	{
		Name: "Prof. Rajesh Kumar", Role: model.RoleFaculty, Email: "r.kumar@college.edu",
		Bio:      "Lead judge and auction overseer ensuring fair play.",
		ImageURL: "https://i.pravatar.cc/300?img=61",
	},
	{
		Name: "Dr. Anjali Verma", Role: model.RoleFaculty, Email: "a.verma@college.edu",
		Bio:      "Responsible for talent scouting and player vetting.",
		ImageURL: "https://i.pravatar.cc/300?img=31",
	},
}
