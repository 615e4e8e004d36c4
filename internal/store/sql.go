package store

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/pkg/clock"
	"github.com/youruser/opdeck/internal/pkg/idgen"
)

// Config holds the dependencies of the SQL repository.
type Config struct {
	DB     *sql.DB
	Driver string
	Clock  clock.Clock
	IDGen  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("db is required")
	}
	if c.Driver != DriverSQLite && c.Driver != DriverPostgres {
		return errors.InvalidArgumentf("unsupported driver %q", c.Driver)
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.IDGen == nil {
		return errors.InvalidArgument("id generator is required")
	}
	return nil
}

type sqlRepository struct {
	db     *sql.DB
	driver string
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewSQLRepository creates a Repository on top of an open database.
func NewSQLRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &sqlRepository{
		db:     cfg.DB,
		driver: cfg.Driver,
		clock:  cfg.Clock,
		idGen:  cfg.IDGen,
	}, nil
}

var _ Repository = (*sqlRepository)(nil)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqlRepository) exec(ctx context.Context, q querier, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, rebind(r.driver, query), args...)
}

func (r *sqlRepository) queryRow(ctx context.Context, q querier, query string, args ...any) *sql.Row {
	return q.QueryRowContext(ctx, rebind(r.driver, query), args...)
}

func (r *sqlRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (r *sqlRepository) CreateDeck(ctx context.Context, d *deck.Deck) error {
	if d == nil {
		return errors.InvalidArgument("deck cannot be nil")
	}
	if d.ID == "" || d.UserID == "" {
		return errors.InvalidArgument("deck id and user id are required")
	}
	if d.Name == "" {
		return errors.InvalidArgument("deck name is required")
	}
	for _, en := range d.Entries {
		if err := checkQuantity(en.Quantity); err != nil {
			return err
		}
	}
	now := r.clock.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = d.CreatedAt

	entries := make([]deck.Entry, len(d.Entries))
	copy(entries, d.Entries)
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := r.exec(ctx, tx,
			`INSERT INTO decks (id, user_id, name, description, is_limited, ui_preferences, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.UserID, d.Name, d.Description, d.IsLimited, nullJSON(d.UIPreferences),
			toMillis(d.CreatedAt), toMillis(d.UpdatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return errors.AlreadyExists("deck already exists").WithMeta("deck_id", d.ID)
			}
			return errors.Wrap(err, "failed to insert deck")
		}
		for i := range entries {
			entries[i].ID = r.idGen.Generate()
			if err := r.insertEntry(ctx, tx, d.ID, entries[i], int64(i+1)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	d.Entries = entries
	return nil
}

func (r *sqlRepository) insertEntry(ctx context.Context, tx *sql.Tx, deckID string, en deck.Entry, pos int64) error {
	_, err := r.exec(ctx, tx,
		`INSERT INTO deck_cards (id, deck_id, card_type, card_id, quantity, selected_alternate_image, exclude_from_draw, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		en.ID, deckID, en.Type, en.CardID, en.Quantity, en.SelectedAlternateImage, en.ExcludeFromDraw, pos)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.InvalidArgumentf("%s card %q is listed twice", en.Type, en.CardID).WithMeta("card_id", en.CardID)
		}
		return errors.Wrap(err, "failed to insert deck card")
	}
	return nil
}

// checkQuantity bounds a stored quantity to 1..deck.MaxEntryQuantity.
func checkQuantity(qty int) error {
	if qty < 1 || qty > deck.MaxEntryQuantity {
		return errors.InvalidArgumentf("quantity must be between 1 and %d, got %d", deck.MaxEntryQuantity, qty)
	}
	return nil
}

func (r *sqlRepository) GetDeck(ctx context.Context, id string) (*deck.Deck, error) {
	if id == "" {
		return nil, errors.InvalidArgument("deck id is required")
	}
	row := r.queryRow(ctx, r.db,
		`SELECT id, user_id, name, description, is_limited, ui_preferences, created_at, updated_at
		 FROM decks WHERE id = ?`, id)
	d, err := scanDeck(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("deck %q not found", id)
		}
		return nil, errors.Wrap(err, "failed to load deck")
	}
	if d.Entries, err = r.loadEntries(ctx, id); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *sqlRepository) ListDecks(ctx context.Context, userID string) ([]*deck.Deck, error) {
	rows, err := r.db.QueryContext(ctx, rebind(r.driver,
		`SELECT id, user_id, name, description, is_limited, ui_preferences, created_at, updated_at
		 FROM decks WHERE user_id = ? ORDER BY updated_at DESC, id`), userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list decks")
	}
	decks := []*deck.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			_ = rows.Close()
			return nil, errors.Wrap(err, "failed to scan deck")
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, errors.Wrap(err, "failed to list decks")
	}
	_ = rows.Close()

	for _, d := range decks {
		if d.Entries, err = r.loadEntries(ctx, d.ID); err != nil {
			return nil, err
		}
	}
	return decks, nil
}

func (r *sqlRepository) UpdateDeck(ctx context.Context, d *deck.Deck) error {
	if d == nil || d.ID == "" {
		return errors.InvalidArgument("deck id is required")
	}
	if d.Name == "" {
		return errors.InvalidArgument("deck name is required")
	}
	d.UpdatedAt = r.clock.Now().UTC()
	res, err := r.exec(ctx, r.db,
		`UPDATE decks SET name = ?, description = ?, is_limited = ?, updated_at = ? WHERE id = ?`,
		d.Name, d.Description, d.IsLimited, toMillis(d.UpdatedAt), d.ID)
	if err != nil {
		return errors.Wrap(err, "failed to update deck")
	}
	return requireRow(res, d.ID)
}

func (r *sqlRepository) DeleteDeck(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.exec(ctx, tx, `DELETE FROM deck_cards WHERE deck_id = ?`, id); err != nil {
			return errors.Wrap(err, "failed to delete deck cards")
		}
		res, err := r.exec(ctx, tx, `DELETE FROM decks WHERE id = ?`, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete deck")
		}
		return requireRow(res, id)
	})
}

func (r *sqlRepository) AddCard(ctx context.Context, deckID string, en deck.Entry) (deck.Entry, error) {
	if err := checkQuantity(en.Quantity); err != nil {
		return deck.Entry{}, err
	}
	var out deck.Entry
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.deckExists(ctx, tx, deckID); err != nil {
			return err
		}
		existing, err := r.findEntry(ctx, tx, deckID, en.Type, en.CardID)
		switch {
		case err == nil:
			if existing.Quantity+en.Quantity > deck.MaxEntryQuantity {
				return errors.InvalidArgumentf("a deck holds at most %d copies of %s card %q, has %d",
					deck.MaxEntryQuantity, en.Type, en.CardID, existing.Quantity).WithMeta("card_id", en.CardID)
			}
			existing.Quantity += en.Quantity
			if en.SelectedAlternateImage != "" {
				existing.SelectedAlternateImage = en.SelectedAlternateImage
			}
			if _, err := r.exec(ctx, tx,
				`UPDATE deck_cards SET quantity = ?, selected_alternate_image = ? WHERE id = ?`,
				existing.Quantity, existing.SelectedAlternateImage, existing.ID); err != nil {
				return errors.Wrap(err, "failed to update deck card")
			}
			out = existing
		case errors.IsNotFound(err):
			var pos int64
			if err := r.queryRow(ctx, tx,
				`SELECT COALESCE(MAX(position), 0) FROM deck_cards WHERE deck_id = ?`, deckID).Scan(&pos); err != nil {
				return errors.Wrap(err, "failed to read card position")
			}
			en.ID = r.idGen.Generate()
			if err := r.insertEntry(ctx, tx, deckID, en, pos+1); err != nil {
				return err
			}
			out = en
		default:
			return err
		}
		return r.touch(ctx, tx, deckID)
	})
	return out, err
}

func (r *sqlRepository) RemoveCard(ctx context.Context, deckID, cardType, cardID string, qty int) (bool, error) {
	if qty < 1 {
		return false, errors.InvalidArgumentf("quantity must be positive, got %d", qty)
	}
	var removed bool
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		en, err := r.findEntry(ctx, tx, deckID, cardType, cardID)
		if err != nil {
			return err
		}
		if en.Quantity <= qty {
			if _, err := r.exec(ctx, tx, `DELETE FROM deck_cards WHERE id = ?`, en.ID); err != nil {
				return errors.Wrap(err, "failed to delete deck card")
			}
			removed = true
		} else if _, err := r.exec(ctx, tx,
			`UPDATE deck_cards SET quantity = ? WHERE id = ?`, en.Quantity-qty, en.ID); err != nil {
			return errors.Wrap(err, "failed to update deck card")
		}
		return r.touch(ctx, tx, deckID)
	})
	return removed, err
}

func (r *sqlRepository) ClearCards(ctx context.Context, deckID string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.deckExists(ctx, tx, deckID); err != nil {
			return err
		}
		if _, err := r.exec(ctx, tx, `DELETE FROM deck_cards WHERE deck_id = ?`, deckID); err != nil {
			return errors.Wrap(err, "failed to clear deck cards")
		}
		return r.touch(ctx, tx, deckID)
	})
}

func (r *sqlRepository) SetExcludeFromDraw(ctx context.Context, deckID, cardType, cardID string, exclude bool) error {
	res, err := r.exec(ctx, r.db,
		`UPDATE deck_cards SET exclude_from_draw = ? WHERE deck_id = ? AND card_type = ? AND card_id = ?`,
		exclude, deckID, cardType, cardID)
	if err != nil {
		return errors.Wrap(err, "failed to save draw exclusion")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to save draw exclusion")
	}
	if n == 0 {
		return errors.NotFoundf("%s card %q is not in deck %q", cardType, cardID, deckID)
	}
	return nil
}

func (r *sqlRepository) GetUIPreferences(ctx context.Context, deckID string) (json.RawMessage, error) {
	var prefs sql.NullString
	err := r.queryRow(ctx, r.db, `SELECT ui_preferences FROM decks WHERE id = ?`, deckID).Scan(&prefs)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("deck %q not found", deckID)
		}
		return nil, errors.Wrap(err, "failed to load ui preferences")
	}
	if !prefs.Valid || prefs.String == "" {
		return nil, nil
	}
	return json.RawMessage(prefs.String), nil
}

func (r *sqlRepository) UpdateUIPreferences(ctx context.Context, deckID string, prefs json.RawMessage) error {
	if len(prefs) > 0 && !json.Valid(prefs) {
		return errors.InvalidArgument("ui preferences must be valid JSON")
	}
	res, err := r.exec(ctx, r.db,
		`UPDATE decks SET ui_preferences = ?, updated_at = ? WHERE id = ?`,
		nullJSON(prefs), toMillis(r.clock.Now()), deckID)
	if err != nil {
		return errors.Wrap(err, "failed to save ui preferences")
	}
	return requireRow(res, deckID)
}

func (r *sqlRepository) UserOwnsDeck(ctx context.Context, deckID, userID string) (bool, error) {
	var owner string
	err := r.queryRow(ctx, r.db, `SELECT user_id FROM decks WHERE id = ?`, deckID).Scan(&owner)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return false, errors.NotFoundf("deck %q not found", deckID)
		}
		return false, errors.Wrap(err, "failed to check deck owner")
	}
	return owner == userID, nil
}

func (r *sqlRepository) loadEntries(ctx context.Context, deckID string) ([]deck.Entry, error) {
	rows, err := r.db.QueryContext(ctx, rebind(r.driver,
		`SELECT id, card_type, card_id, quantity, selected_alternate_image, exclude_from_draw
		 FROM deck_cards WHERE deck_id = ? ORDER BY position`), deckID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load deck cards")
	}
	defer rows.Close()

	entries := []deck.Entry{}
	for rows.Next() {
		en, err := scanEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan deck card")
		}
		entries = append(entries, en)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to load deck cards")
	}
	return entries, nil
}

func (r *sqlRepository) findEntry(ctx context.Context, q querier, deckID, cardType, cardID string) (deck.Entry, error) {
	row := r.queryRow(ctx, q,
		`SELECT id, card_type, card_id, quantity, selected_alternate_image, exclude_from_draw
		 FROM deck_cards WHERE deck_id = ? AND card_type = ? AND card_id = ?`, deckID, cardType, cardID)
	en, err := scanEntry(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return deck.Entry{}, errors.NotFoundf("%s card %q is not in the deck", cardType, cardID)
		}
		return deck.Entry{}, errors.Wrap(err, "failed to load deck card")
	}
	return en, nil
}

func (r *sqlRepository) deckExists(ctx context.Context, q querier, deckID string) error {
	var id string
	err := r.queryRow(ctx, q, `SELECT id FROM decks WHERE id = ?`, deckID).Scan(&id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundf("deck %q not found", deckID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load deck")
	}
	return nil
}

func (r *sqlRepository) touch(ctx context.Context, q querier, deckID string) error {
	if _, err := r.exec(ctx, q, `UPDATE decks SET updated_at = ? WHERE id = ?`,
		toMillis(r.clock.Now()), deckID); err != nil {
		return errors.Wrap(err, "failed to update deck timestamp")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDeck(s scanner) (*deck.Deck, error) {
	var (
		d                deck.Deck
		prefs            sql.NullString
		created, updated int64
	)
	if err := s.Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.IsLimited, &prefs, &created, &updated); err != nil {
		return nil, err
	}
	if prefs.Valid && prefs.String != "" {
		d.UIPreferences = json.RawMessage(prefs.String)
	}
	d.CreatedAt = fromMillis(created)
	d.UpdatedAt = fromMillis(updated)
	d.Entries = []deck.Entry{}
	return &d, nil
}

func scanEntry(s scanner) (deck.Entry, error) {
	var en deck.Entry
	err := s.Scan(&en.ID, &en.Type, &en.CardID, &en.Quantity, &en.SelectedAlternateImage, &en.ExcludeFromDraw)
	return en, err
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFoundf("deck %q not found", id)
	}
	return nil
}

func nullJSON(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}
