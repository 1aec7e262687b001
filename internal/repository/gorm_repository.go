package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/config"
	model "auction-backend/internal/models"
	"auction-backend/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// GormStore implements AuctionStore on top of GORM. A postgres:// DSN
// selects the hosted database; otherwise the store runs on an SQLite file,
// which is the local/dev deployment mode.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the configured database, retrying a bounded number of
// times with a fixed delay, and runs migrations. Callers treat an error
// here as fatal: the process must not serve against an unready store.
func Open(cfg config.DatabaseConfig) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	dial, embedded := dialectorFor(cfg)

	var db *gorm.DB
	var err error
	for attempt := 0; ; attempt++ {
		db, err = gorm.Open(dial, &gorm.Config{Logger: gormLog})
		if err == nil {
			break
		}
		if attempt >= cfg.ConnectRetries {
			return nil, fmt.Errorf("open database after %d attempts: %w", attempt+1, err)
		}
		utils.Warn("database connection failed, retrying", map[string]any{
			"attempt": attempt + 1,
			"delay":   cfg.ConnectRetryDelay.String(),
			"error":   err.Error(),
		})
		time.Sleep(cfg.ConnectRetryDelay)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql db: %w", err)
	}
	if embedded {
		// SQLite allows one writer; a single pooled connection serializes
		// transactions instead of surfacing SQLITE_BUSY to callers.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.AutoMigrate(
		&model.Player{},
		&model.Bid{},
		&model.Enquiry{},
		&model.PollOption{},
		&model.Person{},
		&model.ActivityLogEntry{},
		&model.AuctionSetting{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &GormStore{db: db}, nil
}

// dialectorFor maps the configured DSN to a GORM driver. An empty DSN means
// an SQLite file in the data directory; any non-postgres DSN is treated as
// an SQLite path. The second return reports the embedded driver.
func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, bool) {
	dsn := cfg.DSN
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn), false
	}
	if dsn == "" {
		dsn = filepath.Join(cfg.DataDir, "auction.db")
	}
	return sqlite.Open(dsn + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"), true
}

// PlaceBid locks the player row FOR UPDATE, validates the amount against
// the serialized current bid, and applies the update plus the immutable
// bid record in one transaction. On SQLite the locking clause is a no-op;
// the single-writer transaction model serializes the span anyway.
func (s *GormStore) PlaceBid(playerID uint, bidderName string, amount int) (model.Player, model.Bid, error) {
	var player model.Player
	var bid model.Bid

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("place bid for player %d: %w", playerID, auctionerrors.ErrPlayerNotFound)
			}
			return fmt.Errorf("place bid for player %d: %w", playerID, err)
		}

		if amount <= player.CurrentBid {
			return fmt.Errorf("current highest bid is %d: %w", player.CurrentBid, auctionerrors.ErrBidTooLow)
		}

		player.CurrentBid = amount
		player.HighestBidder = &bidderName
		player.TotalBids++

		if err := tx.Model(&model.Player{}).Where("id = ?", player.ID).Updates(map[string]any{
			"current_bid":    player.CurrentBid,
			"highest_bidder": bidderName,
			"total_bids":     player.TotalBids,
		}).Error; err != nil {
			return fmt.Errorf("update player %d: %w", player.ID, err)
		}

		bid = model.Bid{
			PlayerID:   player.ID,
			BidderName: bidderName,
			Amount:     amount,
		}
		if err := tx.Create(&bid).Error; err != nil {
			return fmt.Errorf("record bid for player %d: %w", player.ID, err)
		}
		return nil
	})
	if err != nil {
		return model.Player{}, model.Bid{}, err
	}
	return player, bid, nil
}

// GetPlayer returns a single player by id.
func (s *GormStore) GetPlayer(playerID uint) (model.Player, error) {
	var player model.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Player{}, fmt.Errorf("get player %d: %w", playerID, auctionerrors.ErrPlayerNotFound)
		}
		return model.Player{}, fmt.Errorf("get player %d: %w", playerID, err)
	}
	return player, nil
}

// ListPlayers returns all players ordered by current bid descending.
func (s *GormStore) ListPlayers() ([]model.Player, error) {
	var players []model.Player
	if err := s.db.Order("current_bid DESC, id ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// BidHistory returns up to limit bids for a player, newest first.
func (s *GormStore) BidHistory(playerID uint, limit int) ([]model.Bid, error) {
	var bids []model.Bid
	if err := s.db.Where("player_id = ?", playerID).
		Order("id DESC").Limit(limit).Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("bid history for player %d: %w", playerID, err)
	}
	return bids, nil
}

// CreateEnquiry inserts a contact-form submission.
func (s *GormStore) CreateEnquiry(enquiry *model.Enquiry) error {
	if err := s.db.Create(enquiry).Error; err != nil {
		return fmt.Errorf("create enquiry: %w", err)
	}
	return nil
}

// ListPollOptions returns all poll options ordered by votes descending.
func (s *GormStore) ListPollOptions() ([]model.PollOption, error) {
	var options []model.PollOption
	if err := s.db.Order("votes DESC, id ASC").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("list poll options: %w", err)
	}
	return options, nil
}

// IncrementVote adds exactly one vote to the named team. The increment is a
// single atomic UPDATE, so concurrent votes never lose counts.
func (s *GormStore) IncrementVote(teamName string) (model.PollOption, error) {
	res := s.db.Model(&model.PollOption{}).
		Where("team_name = ?", teamName).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if res.Error != nil {
		return model.PollOption{}, fmt.Errorf("vote for %q: %w", teamName, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.PollOption{}, fmt.Errorf("vote for %q: %w", teamName, auctionerrors.ErrTeamNotFound)
	}

	var option model.PollOption
	if err := s.db.Where("team_name = ?", teamName).First(&option).Error; err != nil {
		return model.PollOption{}, fmt.Errorf("vote for %q: %w", teamName, err)
	}
	return option, nil
}

// ResetVotes zeroes every option's counter.
func (s *GormStore) ResetVotes() error {
	err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.PollOption{}).
		UpdateColumn("votes", 0).Error
	if err != nil {
		return fmt.Errorf("reset votes: %w", err)
	}
	return nil
}

// ListPeopleByRole returns people with the given role tag, ordered by name.
func (s *GormStore) ListPeopleByRole(role string) ([]model.Person, error) {
	var people []model.Person
	if err := s.db.Where("role = ?", role).Order("name").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("list people with role %q: %w", role, err)
	}
	return people, nil
}

// AppendActivity inserts one append-only log entry and returns it.
func (s *GormStore) AppendActivity(entryType, description string) (model.ActivityLogEntry, error) {
	entry := model.ActivityLogEntry{
		Type:        entryType,
		Description: description,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return model.ActivityLogEntry{}, fmt.Errorf("append activity: %w", err)
	}
	return entry, nil
}

// RecentActivity returns up to limit log entries, newest first.
func (s *GormStore) RecentActivity(limit int) ([]model.ActivityLogEntry, error) {
	var entries []model.ActivityLogEntry
	if err := s.db.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return entries, nil
}

// CountBids returns the total number of recorded bids.
func (s *GormStore) CountBids() (int64, error) {
	var count int64
	if err := s.db.Model(&model.Bid{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bids: %w", err)
	}
	return count, nil
}

// TotalCurrentValue returns the sum of all players' current bids, 0 when
// there are no players.
func (s *GormStore) TotalCurrentValue() (int64, error) {
	var total int64
	err := s.db.Model(&model.Player{}).
		Select("COALESCE(SUM(current_bid), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("total current value: %w", err)
	}
	return total, nil
}

// Settings returns the singleton settings row.
func (s *GormStore) Settings() (model.AuctionSetting, error) {
	var setting model.AuctionSetting
	if err := s.db.First(&setting, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AuctionSetting{}, auctionerrors.ErrSettingsMissing
		}
		return model.AuctionSetting{}, fmt.Errorf("load settings: %w", err)
	}
	return setting, nil
}

// Ping reports whether the underlying database connection is usable.
func (s *GormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
