package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createPlatformConfigTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE platform_configs (
		id TEXT PRIMARY KEY,
		authority TEXT NOT NULL,
		platform_fee_bps INTEGER NOT NULL,
		platform_treasury TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		authority TEXT NOT NULL,
		project_id TEXT NOT NULL UNIQUE,
		project_treasury TEXT NOT NULL,
		royalty_wallet TEXT,
		royalty_bps INTEGER NOT NULL DEFAULT 0,
		last_activity_ts INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCollectionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE collections (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		collection_id TEXT NOT NULL,
		metadata_uri TEXT NOT NULL,
		token_mint TEXT,
		is_compressed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		UNIQUE(project_id, collection_id)
	);`)
}

func createLiquidityPoolTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE liquidity_pools (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL UNIQUE,
		token_mint TEXT NOT NULL,
		lp_token_account TEXT NOT NULL,
		oracle_price_usd INTEGER,
		oracle_price_last_update INTEGER NOT NULL DEFAULT 0,
		redemption_locked BOOLEAN NOT NULL DEFAULT 1,
		price_source TEXT NOT NULL DEFAULT 'NONE',
		last_activity INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createNftTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE nfts (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		collection_id TEXT NOT NULL,
		mint TEXT NOT NULL UNIQUE,
		metadata_uri TEXT NOT NULL,
		minted_at INTEGER NOT NULL,
		cooldown_end_ts INTEGER,
		discount_percent INTEGER,
		fusion_level INTEGER NOT NULL DEFAULT 0,
		parent_nfts TEXT DEFAULT '[]',
		rarity_score INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE nft_listings (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		nft_mint TEXT NOT NULL UNIQUE,
		price INTEGER NOT NULL,
		discount_percent INTEGER,
		cooldown_period INTEGER,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createEscrowTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE token_escrows (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		nft_mint TEXT NOT NULL UNIQUE,
		token_mint TEXT NOT NULL,
		token_amount INTEGER NOT NULL,
		escrow_token_account TEXT NOT NULL,
		discount_percent INTEGER,
		vesting_end_ts INTEGER,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTraitTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE trait_types (
		id TEXT PRIMARY KEY,
		collection_id TEXT NOT NULL,
		name TEXT NOT NULL,
		is_required BOOLEAN NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		"values" TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		UNIQUE(collection_id, name)
	);`)
	mustExec(t, db, `CREATE TABLE collection_trait_configs (
		id TEXT PRIMARY KEY,
		collection_id TEXT NOT NULL UNIQUE,
		base_uri TEXT NOT NULL,
		auto_generation_enabled BOOLEAN NOT NULL DEFAULT 0,
		metadata_format TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE nft_traits (
		id TEXT PRIMARY KEY,
		nft_mint TEXT NOT NULL UNIQUE,
		collection_id TEXT NOT NULL,
		traits TEXT NOT NULL DEFAULT '[]',
		is_auto_generated BOOLEAN NOT NULL DEFAULT 0,
		generation_seed BLOB,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFusionConfigTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE fusion_configs (
		id TEXT PRIMARY KEY,
		collection_id TEXT NOT NULL UNIQUE,
		min_nfts INTEGER NOT NULL,
		max_nfts INTEGER NOT NULL,
		base_success_rate INTEGER NOT NULL,
		burn_percent INTEGER NOT NULL DEFAULT 0,
		cooldown_period INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTokenAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE token_accounts (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		mint TEXT NOT NULL,
		balance INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(owner, mint)
	);`)
}
