package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cafeanalog/coffeecard-api/internal/config"
	"github.com/cafeanalog/coffeecard-api/internal/modules/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Loader reconstructs the fully linked entity graph from versioned
// snapshot files. It runs once at startup, before any request handling,
// when the active backend is ephemeral. Seeding is all-or-nothing: any
// failure aborts the transaction and the process start.
type Loader struct {
	db      *gorm.DB
	dir     string
	version string
	log     *zap.Logger
}

func NewLoader(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Loader {
	return &Loader{
		db:      db,
		dir:     cfg.Seed.Dir,
		version: cfg.Seed.Version,
		log:     log,
	}
}

// Load populates every entity inside one transaction. Entities with
// foreign keys load after the entities they reference so a backend that
// enforces referential integrity accepts the graph.
func (l *Loader) Load(ctx context.Context) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			entity string
			load   func(*gorm.DB) (int, error)
		}{
			{"Programmes", l.programmes},
			{"Products", l.products},
			{"MenuItems", l.menuItems},
			{"Users", l.users},
			{"ProductUserGroups", l.productUserGroups},
			{"MenuItemProducts", l.menuItemProducts},
			{"Purchases", l.purchases},
			{"PosPurchases", l.posPurchases},
			{"Tickets", l.tickets},
			{"Vouchers", l.vouchers},
			{"_Statistics_", l.statistics},
			{"Tokens", l.tokens},
			{"WebhookConfigurations", l.webhookConfigurations},
		}
		for _, step := range steps {
			n, err := step.load(tx)
			if err != nil {
				return fmt.Errorf("seed %s: %w", step.entity, err)
			}
			l.log.Debug("seeded entity", zap.String("entity", step.entity), zap.Int("rows", n))
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.log.Sugar().Infow("snapshot seed complete", "dir", l.dir, "version", l.version)
	return nil
}

// records reads one snapshot file and splits it into positional rows:
// the header line is discarded, blank lines are dropped, quote characters
// are replaced with a NUL placeholder (not removed, so field positions
// survive quoted fields that contain commas — lossy for fields holding a
// literal quote), and each line is split on commas with no CSV escaping.
// A row whose field count differs from the entity's column width is a
// fatal load error.
func (l *Loader) records(entity string, width int) ([]row, error) {
	name := fmt.Sprintf("%s_%s.csv", entity, l.version)
	raw, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") == "" {
		return nil, fmt.Errorf("%s: missing header line", name)
	}

	var rows []row
	for i, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(strings.ReplaceAll(line, `"`, "\x00"), ",")
		if len(fields) != width {
			return nil, fmt.Errorf("%s line %d: got %d fields, want %d", name, i+2, len(fields), width)
		}
		rows = append(rows, row{file: name, line: i + 2, fields: fields})
	}
	return rows, nil
}

func (l *Loader) programmes(tx *gorm.DB) (int, error) {
	rows, err := l.records("Programmes", 4)
	if err != nil {
		return 0, err
	}
	items := make([]model.Programme, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		priority, err := r.Int(3)
		if err != nil {
			return 0, err
		}
		items = append(items, model.Programme{
			ID:           id,
			ShortName:    r.String(1),
			FullName:     r.String(2),
			SortPriority: priority,
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) products(tx *gorm.DB) (int, error) {
	rows, err := l.records("Products", 7)
	if err != nil {
		return 0, err
	}
	items := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		price, err := r.Int(1)
		if err != nil {
			return 0, err
		}
		numberOfTickets, err := r.Int(2)
		if err != nil {
			return 0, err
		}
		experience, err := r.Int(5)
		if err != nil {
			return 0, err
		}
		items = append(items, model.Product{
			ID:              id,
			Price:           price,
			NumberOfTickets: numberOfTickets,
			Name:            r.String(3),
			Description:     r.String(4),
			ExperienceWorth: experience,
			Visible:         r.Flag(6),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) menuItems(tx *gorm.DB) (int, error) {
	rows, err := l.records("MenuItems", 2)
	if err != nil {
		return 0, err
	}
	items := make([]model.MenuItem, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		items = append(items, model.MenuItem{ID: id, Name: r.String(1)})
	}
	return len(items), create(tx, items)
}

func (l *Loader) users(tx *gorm.DB) (int, error) {
	rows, err := l.records("Users", 13)
	if err != nil {
		return 0, err
	}
	items := make([]model.User, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		experience, err := r.Int(5)
		if err != nil {
			return 0, err
		}
		created, err := r.Time(6)
		if err != nil {
			return 0, err
		}
		updated, err := r.Time(7)
		if err != nil {
			return 0, err
		}
		group, err := r.Int(10)
		if err != nil {
			return 0, err
		}
		programmeID, err := r.Int(12)
		if err != nil {
			return 0, err
		}
		items = append(items, model.User{
			ID:               id,
			Email:            r.String(1),
			Name:             r.String(2),
			Password:         r.String(3),
			Salt:             r.String(4),
			Experience:       experience,
			DateCreated:      created,
			DateUpdated:      updated,
			IsVerified:       r.Flag(8),
			PrivacyActivated: r.Flag(9),
			UserGroup:        model.UserGroupFromInt(group),
			UserState:        model.UserStateFromString(r.String(11)),
			ProgrammeID:      programmeID,
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) productUserGroups(tx *gorm.DB) (int, error) {
	rows, err := l.records("ProductUserGroups", 2)
	if err != nil {
		return 0, err
	}
	items := make([]model.ProductUserGroup, 0, len(rows))
	for _, r := range rows {
		productID, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		group, err := r.Int(1)
		if err != nil {
			return 0, err
		}
		items = append(items, model.ProductUserGroup{
			ProductID: productID,
			UserGroup: model.UserGroupFromInt(group),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) menuItemProducts(tx *gorm.DB) (int, error) {
	rows, err := l.records("MenuItemProducts", 2)
	if err != nil {
		return 0, err
	}
	items := make([]model.MenuItemProduct, 0, len(rows))
	for _, r := range rows {
		menuItemID, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		productID, err := r.Int(1)
		if err != nil {
			return 0, err
		}
		items = append(items, model.MenuItemProduct{MenuItemID: menuItemID, ProductID: productID})
	}
	return len(items), create(tx, items)
}

func (l *Loader) purchases(tx *gorm.DB) (int, error) {
	rows, err := l.records("Purchases", 11)
	if err != nil {
		return 0, err
	}
	items := make([]model.Purchase, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		productID, err := r.Int(2)
		if err != nil {
			return 0, err
		}
		price, err := r.Int(3)
		if err != nil {
			return 0, err
		}
		numberOfTickets, err := r.Int(4)
		if err != nil {
			return 0, err
		}
		created, err := r.Time(5)
		if err != nil {
			return 0, err
		}
		purchasedByID, err := r.Int(9)
		if err != nil {
			return 0, err
		}
		items = append(items, model.Purchase{
			ID:                    id,
			ProductName:           r.String(1),
			ProductID:             productID,
			Price:                 price,
			NumberOfTickets:       numberOfTickets,
			DateCreated:           created,
			OrderID:               r.String(6),
			ExternalTransactionID: r.String(7),
			Status:                model.PurchaseStatusFromString(r.String(8)),
			PurchasedByID:         purchasedByID,
			Type:                  model.PurchaseTypeFromString(r.String(10)),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) posPurchases(tx *gorm.DB) (int, error) {
	rows, err := l.records("PosPurchases", 2)
	if err != nil {
		return 0, err
	}
	items := make([]model.PosPurchase, 0, len(rows))
	for _, r := range rows {
		purchaseID, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		items = append(items, model.PosPurchase{
			PurchaseID:      purchaseID,
			BaristaInitials: r.String(1),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) tickets(tx *gorm.DB) (int, error) {
	rows, err := l.records("Tickets", 8)
	if err != nil {
		return 0, err
	}
	items := make([]model.Ticket, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		created, err := r.Time(1)
		if err != nil {
			return 0, err
		}
		used, err := r.OptionalTime(2)
		if err != nil {
			return 0, err
		}
		productID, err := r.Int(3)
		if err != nil {
			return 0, err
		}
		status, err := r.Int(4)
		if err != nil {
			return 0, err
		}
		ownerID, err := r.Int(5)
		if err != nil {
			return 0, err
		}
		purchaseID, err := r.Int(6)
		if err != nil {
			return 0, err
		}
		items = append(items, model.Ticket{
			ID:               id,
			DateCreated:      created,
			DateUsed:         used,
			ProductID:        productID,
			Status:           model.TicketStatusFromInt(status),
			OwnerID:          ownerID,
			PurchaseID:       purchaseID,
			UsedOnMenuItemID: r.OptionalInt(7),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) vouchers(tx *gorm.DB) (int, error) {
	rows, err := l.records("Vouchers", 9)
	if err != nil {
		return 0, err
	}
	items := make([]model.Voucher, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		created, err := r.Time(2)
		if err != nil {
			return 0, err
		}
		used, err := r.OptionalTime(3)
		if err != nil {
			return 0, err
		}
		productID, err := r.Int(6)
		if err != nil {
			return 0, err
		}
		items = append(items, model.Voucher{
			ID:          id,
			Code:        r.String(1),
			DateCreated: created,
			DateUsed:    used,
			Description: r.OptionalString(4),
			Requester:   r.OptionalString(5),
			ProductID:   productID,
			UserID:      r.OptionalInt(7),
			PurchaseID:  r.OptionalInt(8),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) statistics(tx *gorm.DB) (int, error) {
	rows, err := l.records("_Statistics_", 6)
	if err != nil {
		return 0, err
	}
	items := make([]model.Statistic, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		presetCode, err := r.Int(1)
		if err != nil {
			return 0, err
		}
		preset, err := model.StatisticPresetFromInt(presetCode)
		if err != nil {
			return 0, r.errf(1, "%v", err)
		}
		swipes, err := r.Int(2)
		if err != nil {
			return 0, err
		}
		lastSwipe, err := r.Time(3)
		if err != nil {
			return 0, err
		}
		expiry, err := r.Time(4)
		if err != nil {
			return 0, err
		}
		userID, err := r.Int(5)
		if err != nil {
			return 0, err
		}
		items = append(items, model.Statistic{
			ID:         id,
			Preset:     preset,
			SwipeCount: swipes,
			LastSwipe:  lastSwipe,
			ExpiryDate: expiry,
			UserID:     userID,
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) tokens(tx *gorm.DB) (int, error) {
	rows, err := l.records("Tokens", 3)
	if err != nil {
		return 0, err
	}
	items := make([]model.Token, 0, len(rows))
	for _, r := range rows {
		id, err := r.Int(0)
		if err != nil {
			return 0, err
		}
		// Snapshot tokens are historical refresh tokens; they carry no
		// expiry column and load already expired.
		items = append(items, model.Token{
			ID:        id,
			TokenHash: r.String(1),
			Type:      model.TokenTypeRefresh,
			UserID:    r.OptionalInt(2),
		})
	}
	return len(items), create(tx, items)
}

func (l *Loader) webhookConfigurations(tx *gorm.DB) (int, error) {
	rows, err := l.records("WebhookConfigurations", 5)
	if err != nil {
		return 0, err
	}
	items := make([]model.WebhookConfiguration, 0, len(rows))
	for _, r := range rows {
		id, err := uuid.Parse(r.String(0))
		if err != nil {
			return 0, r.errf(0, "parse %q as uuid", r.String(0))
		}
		updated, err := r.Time(4)
		if err != nil {
			return 0, err
		}
		items = append(items, model.WebhookConfiguration{
			ID:           id,
			URL:          r.String(1),
			SignatureKey: r.String(2),
			Status:       model.WebhookStatusFromString(r.String(3)),
			LastUpdated:  updated,
		})
	}
	return len(items), create(tx, items)
}

// create inserts a batch, tolerating empty snapshots.
func create[T any](tx *gorm.DB, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}
