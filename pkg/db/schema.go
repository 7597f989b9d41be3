package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- Runs table: one row per completed analysis
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source TEXT NOT NULL,
    format TEXT NOT NULL,

    -- Summary figures from the AnalysisResult
    total_events INTEGER NOT NULL,
    total_revenue TEXT NOT NULL,
    server_count INTEGER NOT NULL,
    vehicle_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
