package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'admin',
	full_name     TEXT NOT NULL,
	email         TEXT,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	last_login    DATETIME
);

CREATE TABLE IF NOT EXISTS properties (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	address       TEXT NOT NULL,
	property_type TEXT NOT NULL,
	total_rooms   INTEGER NOT NULL DEFAULT 0,
	total_beds    INTEGER NOT NULL DEFAULT 0,
	description   TEXT,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rooms (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	property_id     INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
	room_number     TEXT NOT NULL,
	room_type       TEXT NOT NULL,
	floor_number    INTEGER,
	occupancy_limit INTEGER NOT NULL DEFAULT 1,
	monthly_rent    REAL,
	status          TEXT NOT NULL DEFAULT 'available',
	description     TEXT,
	created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS beds (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	room_id      INTEGER NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	bed_number   TEXT NOT NULL,
	bed_type     TEXT NOT NULL DEFAULT 'single',
	status       TEXT NOT NULL DEFAULT 'available',
	monthly_rent REAL,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tenants (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name         TEXT NOT NULL,
	mobile_number     TEXT NOT NULL,
	email             TEXT,
	nationality       TEXT,
	profession        TEXT,
	employer          TEXT,
	passport_number   TEXT,
	passport_expiry   DATE,
	visa_number       TEXT,
	visa_expiry       DATE,
	emergency_contact TEXT,
	emergency_phone   TEXT,
	created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bed_assignments (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	bed_id        INTEGER NOT NULL REFERENCES beds(id),
	tenant_id     INTEGER NOT NULL REFERENCES tenants(id),
	assigned_date DATE NOT NULL,
	end_date      DATE,
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS contracts (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	tenant_id        INTEGER NOT NULL REFERENCES tenants(id),
	bed_id           INTEGER NOT NULL REFERENCES beds(id),
	contract_number  TEXT UNIQUE NOT NULL,
	start_date       DATE NOT NULL,
	end_date         DATE NOT NULL,
	rent_amount      REAL NOT NULL,
	security_deposit REAL NOT NULL DEFAULT 0,
	payment_mode     TEXT NOT NULL,
	number_of_checks INTEGER NOT NULL DEFAULT 1,
	status           TEXT NOT NULL DEFAULT 'active',
	created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS payments (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	contract_id    INTEGER NOT NULL REFERENCES contracts(id),
	payment_type   TEXT NOT NULL,
	amount         REAL NOT NULL,
	payment_date   DATE NOT NULL,
	due_date       DATE,
	payment_method TEXT,
	cheque_number  TEXT,
	receipt_number TEXT,
	description    TEXT,
	status         TEXT NOT NULL DEFAULT 'pending',
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS maintenance_requests (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	tenant_id      INTEGER NOT NULL REFERENCES tenants(id),
	room_id        INTEGER NOT NULL REFERENCES rooms(id),
	title          TEXT NOT NULL,
	description    TEXT NOT NULL,
	priority       TEXT NOT NULL DEFAULT 'medium',
	status         TEXT NOT NULL DEFAULT 'new',
	assigned_to    TEXT,
	completed_date DATETIME,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS audit_logs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER REFERENCES users(id),
	action     TEXT NOT NULL,
	table_name TEXT NOT NULL,
	record_id  INTEGER,
	old_values TEXT,
	new_values TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS notifications (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	type         TEXT NOT NULL,
	title        TEXT NOT NULL,
	message      TEXT NOT NULL,
	related_id   INTEGER,
	related_type TEXT,
	is_read      INTEGER NOT NULL DEFAULT 0,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts(status);
CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status);
CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(is_read);
CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_tenants_email ON tenants(email);
CREATE INDEX IF NOT EXISTS idx_tenants_mobile ON tenants(mobile_number);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date);
CREATE INDEX IF NOT EXISTS idx_beds_status ON beds(status);
CREATE INDEX IF NOT EXISTS idx_rooms_property ON rooms(property_id);
CREATE INDEX IF NOT EXISTS idx_beds_room ON beds(room_id);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
