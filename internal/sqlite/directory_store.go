package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bankmanager/internal/core"
)

// DirectoryStore keeps the latest directory snapshot in relational form. Each
// Save replaces every row and appends a revision.
type DirectoryStore struct {
	db  *sql.DB
	tx  *sql.Tx
	now func() time.Time
}

func NewDirectoryStore(db *sql.DB) DirectoryStore {
	return DirectoryStore{
		db:  db,
		now: time.Now,
	}
}

func (s DirectoryStore) Load(ctx context.Context) (core.Snapshot, error) {
	var snap core.Snapshot
	err := s.Atomic(ctx, func(tx DirectoryStore) error {
		rev, err := tx.LatestRevision(ctx)
		if err != nil {
			return err
		}

		snap, err = tx.readDirectory(ctx)
		if err != nil {
			return err
		}
		if len(snap.Banks) != rev.BankCount {
			return fmt.Errorf("%w: revision %s lists %d banks, found %d",
				core.ErrCorruptSnapshot, rev.ID, rev.BankCount, len(snap.Banks))
		}

		return nil
	})
	if err != nil {
		return core.Snapshot{}, err
	}

	return snap, nil
}

func (s DirectoryStore) Save(ctx context.Context, snap core.Snapshot) error {
	return s.Atomic(ctx, func(tx DirectoryStore) error {
		if err := tx.clearDirectory(ctx); err != nil {
			return err
		}
		if err := tx.writeDirectory(ctx, snap); err != nil {
			return err
		}

		return tx.addRevision(ctx, len(snap.Banks))
	})
}

type Revision struct {
	ID        uuid.UUID
	SavedAt   time.Time
	BankCount int
}

// LatestRevision returns core.ErrSnapshotNotFound before the first Save.
func (s DirectoryStore) LatestRevision(ctx context.Context) (Revision, error) {
	q := s.querier()

	query := `
		SELECT id, saved_at, bank_count
		FROM revisions
		ORDER BY saved_at DESC, rowid DESC
		LIMIT 1
	`

	var rev Revision
	err := q.QueryRowContext(ctx, query).Scan(&rev.ID, &rev.SavedAt, &rev.BankCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Revision{}, core.ErrSnapshotNotFound
		}

		return Revision{}, fmt.Errorf("failed to get latest revision: %w", err)
	}

	return rev, nil
}

func (s DirectoryStore) addRevision(ctx context.Context, bankCount int) error {
	if s.tx == nil {
		return errors.New("addRevision must be called within Atomic transaction")
	}

	id := uuid.New()
	query := `INSERT INTO revisions (id, saved_at, bank_count) VALUES (?, ?, ?)`

	if _, err := s.tx.ExecContext(ctx, query, id, s.now().UTC(), bankCount); err != nil {
		return fmt.Errorf("failed to insert revision: %w", err)
	}

	// Only the snapshot in the tables is kept, so only its revision is.
	if _, err := s.tx.ExecContext(ctx, `DELETE FROM revisions WHERE id <> ?`, id); err != nil {
		return fmt.Errorf("failed to prune revisions: %w", err)
	}

	return nil
}

func (s DirectoryStore) clearDirectory(ctx context.Context) error {
	if s.tx == nil {
		return errors.New("clearDirectory must be called within Atomic transaction")
	}

	for _, table := range []string{"accounts", "customers", "branches", "banks"} {
		if _, err := s.tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return nil
}

func (s DirectoryStore) writeDirectory(ctx context.Context, snap core.Snapshot) error {
	if s.tx == nil {
		return errors.New("writeDirectory must be called within Atomic transaction")
	}

	stmts, err := s.prepareInserts(ctx)
	if err != nil {
		return err
	}
	defer stmts.close()

	for i, b := range snap.Banks {
		if _, err := stmts.bank.ExecContext(ctx, b.ID, b.Name, i); err != nil {
			return fmt.Errorf("failed to insert bank %d: %w", b.ID, err)
		}

		for j, br := range b.Branches {
			a := br.Address
			_, err := stmts.branch.ExecContext(ctx,
				b.ID, br.Code, br.Name, a.Street, a.City, a.State, a.Zip, a.Valid, j,
			)
			if err != nil {
				return fmt.Errorf("failed to insert branch %d: %w", br.Code, err)
			}

			for k, c := range br.Customers {
				a := c.Address
				_, err := stmts.customer.ExecContext(ctx,
					b.ID, br.Code, c.ID, c.Name, a.Street, a.City, a.State, a.Zip, a.Valid, k,
				)
				if err != nil {
					return fmt.Errorf("failed to insert customer %d: %w", c.ID, err)
				}

				for l, acc := range c.Accounts {
					_, err := stmts.account.ExecContext(ctx, b.ID, br.Code, c.ID, acc.Number, acc.Balance, l)
					if err != nil {
						return fmt.Errorf("failed to insert account %d: %w", acc.Number, err)
					}
				}
			}
		}
	}

	return nil
}

type insertStmts struct {
	bank     *sql.Stmt
	branch   *sql.Stmt
	customer *sql.Stmt
	account  *sql.Stmt
}

func (s DirectoryStore) prepareInserts(ctx context.Context) (*insertStmts, error) {
	queries := []string{
		`INSERT INTO banks (id, name, position) VALUES (?, ?, ?)`,
		`INSERT INTO branches (bank_id, code, name, street, city, state, zip, address_valid, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		`INSERT INTO customers (bank_id, branch_code, id, name, street, city, state, zip, address_valid, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		`INSERT INTO accounts (bank_id, branch_code, customer_id, number, balance, position)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	}

	prepared := make([]*sql.Stmt, 0, len(queries))
	for _, q := range queries {
		stmt, err := s.tx.PrepareContext(ctx, q)
		if err != nil {
			for _, p := range prepared {
				p.Close()
			}
			return nil, fmt.Errorf("failed to prepare insert: %w", err)
		}
		prepared = append(prepared, stmt)
	}

	return &insertStmts{
		bank:     prepared[0],
		branch:   prepared[1],
		customer: prepared[2],
		account:  prepared[3],
	}, nil
}

func (st *insertStmts) close() {
	st.bank.Close()
	st.branch.Close()
	st.customer.Close()
	st.account.Close()
}

type branchKey struct {
	bankID int
	code   int
}

type customerKey struct {
	branchKey
	id int
}

type position struct {
	bank, branch, customer int
}

// readDirectory rebuilds the snapshot level by level. Rows are read in
// position order, so appending to the parent keeps the saved order.
func (s DirectoryStore) readDirectory(ctx context.Context) (core.Snapshot, error) {
	if s.tx == nil {
		return core.Snapshot{}, errors.New("readDirectory must be called within Atomic transaction")
	}

	snap := core.Snapshot{Banks: []core.BankSnapshot{}}
	banks := map[int]int{}
	branches := map[branchKey]position{}
	customers := map[customerKey]position{}

	err := s.scan(ctx, `SELECT id, name FROM banks ORDER BY position`, func(rows *sql.Rows) error {
		var b core.BankSnapshot
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return err
		}
		b.Branches = []core.BranchSnapshot{}
		banks[b.ID] = len(snap.Banks)
		snap.Banks = append(snap.Banks, b)
		return nil
	})
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to read banks: %w", err)
	}

	query := `
		SELECT bank_id, code, name, street, city, state, zip, address_valid
		FROM branches
		ORDER BY position
	`
	err = s.scan(ctx, query, func(rows *sql.Rows) error {
		var (
			key branchKey
			br  core.BranchSnapshot
			a   = &br.Address
		)
		if err := rows.Scan(&key.bankID, &br.Code, &br.Name, &a.Street, &a.City, &a.State, &a.Zip, &a.Valid); err != nil {
			return err
		}
		key.code = br.Code

		bi, ok := banks[key.bankID]
		if !ok {
			return fmt.Errorf("%w: branch %d references missing bank %d", core.ErrCorruptSnapshot, br.Code, key.bankID)
		}
		br.Customers = []core.CustomerSnapshot{}
		branches[key] = position{bank: bi, branch: len(snap.Banks[bi].Branches)}
		snap.Banks[bi].Branches = append(snap.Banks[bi].Branches, br)
		return nil
	})
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to read branches: %w", err)
	}

	query = `
		SELECT bank_id, branch_code, id, name, street, city, state, zip, address_valid
		FROM customers
		ORDER BY position
	`
	err = s.scan(ctx, query, func(rows *sql.Rows) error {
		var (
			key customerKey
			c   core.CustomerSnapshot
			a   = &c.Address
		)
		if err := rows.Scan(&key.bankID, &key.code, &c.ID, &c.Name, &a.Street, &a.City, &a.State, &a.Zip, &a.Valid); err != nil {
			return err
		}
		key.id = c.ID

		p, ok := branches[key.branchKey]
		if !ok {
			return fmt.Errorf("%w: customer %d references missing branch %d", core.ErrCorruptSnapshot, c.ID, key.code)
		}
		c.Accounts = []core.AccountSnapshot{}
		br := &snap.Banks[p.bank].Branches[p.branch]
		p.customer = len(br.Customers)
		customers[key] = p
		br.Customers = append(br.Customers, c)
		return nil
	})
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to read customers: %w", err)
	}

	query = `
		SELECT bank_id, branch_code, customer_id, number, balance
		FROM accounts
		ORDER BY position
	`
	err = s.scan(ctx, query, func(rows *sql.Rows) error {
		var (
			key customerKey
			acc core.AccountSnapshot
		)
		if err := rows.Scan(&key.bankID, &key.code, &key.id, &acc.Number, &acc.Balance); err != nil {
			return err
		}

		p, ok := customers[key]
		if !ok {
			return fmt.Errorf("%w: account %d references missing customer %d", core.ErrCorruptSnapshot, acc.Number, key.id)
		}
		c := &snap.Banks[p.bank].Branches[p.branch].Customers[p.customer]
		c.Accounts = append(c.Accounts, acc)
		return nil
	})
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to read accounts: %w", err)
	}

	return snap, nil
}

func (s DirectoryStore) scan(ctx context.Context, query string, row func(*sql.Rows) error) error {
	rows, err := s.tx.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := row(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s DirectoryStore) querier() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s DirectoryStore) Atomic(ctx context.Context, cb func(DirectoryStore) error) error {
	// _txlock=immediate in the DSN makes this BEGIN IMMEDIATE: concurrent
	// saves serialise while WAL readers keep going.
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := DirectoryStore{
		tx:  tx,
		now: s.now,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
