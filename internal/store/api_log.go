package store

import (
	"context"
	"fmt"
)

const apiLogColumns = `id, endpoint, method, status_code, response_time, ip_address, user_agent, error_message, created_at`

const sqlCreateAPILog = `
INSERT INTO api_logs (endpoint, method, status_code, response_time, ip_address, user_agent, error_message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + apiLogColumns

// CreateAPILog appends one row to the request log
func (s *Store) CreateAPILog(ctx context.Context, params CreateAPILogParams) (APILog, error) {
	var log APILog
	err := s.db.GetContext(ctx, &log, sqlCreateAPILog,
		params.Endpoint,
		params.Method,
		params.StatusCode,
		params.ResponseTime,
		params.IPAddress,
		params.UserAgent,
		params.ErrorMessage,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create api log", err)
		return APILog{}, fmt.Errorf("failed to create api log: %w", err)
	}
	return log, nil
}

// ListAPILogs returns request logs newest first with optional filters
func (s *Store) ListAPILogs(ctx context.Context, params ListAPILogsParams) (ListAPILogsResult, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.Endpoint != nil && *params.Endpoint != "" {
		argCount++
		where += fmt.Sprintf(" AND endpoint ILIKE $%d ESCAPE '\\'", argCount)
		args = append(args, "%"+escapeLike(*params.Endpoint)+"%")
	}

	if params.Method != nil {
		argCount++
		where += fmt.Sprintf(" AND method = $%d", argCount)
		args = append(args, *params.Method)
	}

	if params.StatusCode != nil {
		argCount++
		where += fmt.Sprintf(" AND status_code = $%d", argCount)
		args = append(args, *params.StatusCode)
	}

	if params.StartDate != nil {
		argCount++
		where += fmt.Sprintf(" AND created_at >= $%d", argCount)
		args = append(args, *params.StartDate)
	}

	if params.EndDate != nil {
		argCount++
		where += fmt.Sprintf(" AND created_at <= $%d", argCount)
		args = append(args, *params.EndDate)
	}

	if params.ErrorsOnly {
		where += " AND status_code >= 400"
	}

	var totalCount int
	if err := s.db.GetContext(ctx, &totalCount, `SELECT COUNT(*) FROM api_logs`+where, args...); err != nil {
		s.logger.Error(ctx, "failed to count api logs", err)
		return ListAPILogsResult{}, fmt.Errorf("failed to count api logs: %w", err)
	}

	offset := pageOffset(params.Page, params.Limit)
	query := `SELECT ` + apiLogColumns + ` FROM api_logs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", argCount+1, argCount+2)
	args = append(args, params.Limit, offset)

	logs := []APILog{}
	if err := s.db.SelectContext(ctx, &logs, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list api logs", err)
		return ListAPILogsResult{}, fmt.Errorf("failed to list api logs: %w", err)
	}

	return ListAPILogsResult{
		Logs:       logs,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages(totalCount, params.Limit),
	}, nil
}

const sqlCountAPILogs = `SELECT COUNT(*) FROM api_logs`

// CountAPILogs returns the number of logged requests
func (s *Store) CountAPILogs(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountAPILogs); err != nil {
		s.logger.Error(ctx, "failed to count api logs", err)
		return 0, fmt.Errorf("failed to count api logs: %w", err)
	}
	return count, nil
}

const sqlGetAPILogStats = `
SELECT
    COUNT(*) AS total_count,
    COUNT(*) FILTER (WHERE status_code >= 400) AS error_count,
    COALESCE(AVG(response_time), 0)::float8 AS avg_response_time
FROM api_logs`

// GetAPILogStats aggregates totals, errors and average latency over the whole log
func (s *Store) GetAPILogStats(ctx context.Context) (APILogStats, error) {
	var stats APILogStats
	if err := s.db.GetContext(ctx, &stats, sqlGetAPILogStats); err != nil {
		s.logger.Error(ctx, "failed to get api log stats", err)
		return APILogStats{}, fmt.Errorf("failed to get api log stats: %w", err)
	}
	return stats, nil
}

const sqlGetTopEndpoints = `
SELECT endpoint AS key, COUNT(*) AS count
FROM api_logs
GROUP BY endpoint
ORDER BY count DESC, key
LIMIT $1`

// GetTopEndpoints returns the most requested endpoints
func (s *Store) GetTopEndpoints(ctx context.Context, limit int) ([]CountByKey, error) {
	counts := []CountByKey{}
	if err := s.db.SelectContext(ctx, &counts, sqlGetTopEndpoints, limit); err != nil {
		s.logger.Error(ctx, "failed to get top endpoints", err)
		return nil, fmt.Errorf("failed to get top endpoints: %w", err)
	}
	return counts, nil
}

const sqlGetRecentAPILogs = `SELECT ` + apiLogColumns + ` FROM api_logs ORDER BY created_at DESC LIMIT $1`

// GetRecentAPILogs returns the newest request logs first
func (s *Store) GetRecentAPILogs(ctx context.Context, limit int) ([]APILog, error) {
	logs := []APILog{}
	if err := s.db.SelectContext(ctx, &logs, sqlGetRecentAPILogs, limit); err != nil {
		s.logger.Error(ctx, "failed to get recent api logs", err)
		return nil, fmt.Errorf("failed to get recent api logs: %w", err)
	}
	return logs, nil
}
