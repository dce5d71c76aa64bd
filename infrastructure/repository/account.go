package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-report-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-report-engine/internal/domain"
)

const accountsTable = "accounts acc"

// AccountRepository lista as contas de anúncios conhecidas pelo espelho,
// usadas pelo colaborador de UI para montar a seleção de contas do relatório
type AccountRepository interface {
	ListAccounts(ctx context.Context) ([]*domain.AdAccount, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("acc.id", "acc.name", "acc.last_synced_at").
		From(accountsTable).
		OrderBy("acc.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{Status: domain.StatusActive}
		var lastSyncedAt sql.NullTime

		if err := rows.Scan(&account.ID, &account.Name, &lastSyncedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		if lastSyncedAt.Valid {
			account.LastSyncedAt = &lastSyncedAt.Time
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}
