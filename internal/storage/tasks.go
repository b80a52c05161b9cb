package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moondogdev/overwhelmed/internal/model"
)

// ReplaceTasks replaces the stored open and completed task lists with the
// given snapshots inside a single transaction.
func (s *SQLiteStorage) ReplaceTasks(ctx context.Context, open, completed []model.Task) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (
			id, text, category_id, tax_category_id, account_id,
			transaction_type, income_type, transaction_amount, pay_rate,
			open_date, created_at, completed_duration, manual_time, completed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	insert := func(tasks []model.Task, completedFlag int) error {
		for _, task := range tasks {
			if _, err := stmt.ExecContext(ctx,
				task.ID, task.Text, task.CategoryID, task.TaxCategoryID, task.AccountID,
				string(task.TransactionType), string(task.IncomeType),
				task.TransactionAmount, task.PayRate,
				task.OpenDate, task.CreatedAt, task.CompletedDuration, task.ManualTime,
				completedFlag,
			); err != nil {
				return fmt.Errorf("failed to insert task %s: %w", task.ID, err)
			}
		}
		return nil
	}

	if err := insert(open, 0); err != nil {
		return err
	}
	if err := insert(completed, 1); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadTasks returns the stored open and completed task lists.
func (s *SQLiteStorage) LoadTasks(ctx context.Context) (open, completed []model.Task, err error) {
	if err := validateContext(ctx); err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, category_id, tax_category_id, account_id,
			transaction_type, income_type, transaction_amount, pay_rate,
			open_date, created_at, completed_duration, manual_time, completed
		FROM tasks
		ORDER BY open_date, id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var task model.Task
		var txType, incomeType sql.NullString
		var completedFlag int

		if err := rows.Scan(
			&task.ID, &task.Text, &task.CategoryID, &task.TaxCategoryID, &task.AccountID,
			&txType, &incomeType, &task.TransactionAmount, &task.PayRate,
			&task.OpenDate, &task.CreatedAt, &task.CompletedDuration, &task.ManualTime,
			&completedFlag,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan task: %w", err)
		}

		task.TransactionType = model.TransactionType(txType.String)
		task.IncomeType = model.IncomeType(incomeType.String)

		if completedFlag != 0 {
			completed = append(completed, task)
		} else {
			open = append(open, task)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return open, completed, nil
}
