package postgres

import (
	"fmt"
	"strings"

	"github.com/dtroode/adminpanel-server/internal/model"
)

const userColumns = `u.id, u.name, u.email, u.image, u.email_verified, u.role, u.banned, u.ban_reason,
		u.admin_granted_pro, u.created_at, u.updated_at`

const chatCountColumn = `(SELECT COUNT(*) FROM chats c WHERE c.user_id = u.id) AS chat_count`

// sortColumns is the closed mapping from a sort key to a column reference.
var sortColumns = map[model.SortField]string{
	model.SortByName:      "u.name",
	model.SortByEmail:     "u.email",
	model.SortByRole:      "u.role",
	model.SortByBanned:    "u.banned",
	model.SortByCreatedAt: "u.created_at",
}

func orderClause(field model.SortField, dir model.SortDirection) string {
	col, ok := sortColumns[field]
	if !ok {
		col = sortColumns[model.SortByCreatedAt]
	}
	d := "DESC"
	if dir == model.SortAsc {
		d = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, u.id ASC", col, d)
}

// escapeLike makes s match literally inside a LIKE pattern with ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// searchPredicate returns a WHERE clause matching search against name or email, and its args.
// Placeholders start at $1.
func searchPredicate(search string) (string, []any) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}
	pattern := "%" + escapeLike(search) + "%"
	return `WHERE (u.name ILIKE $1 ESCAPE '\' OR u.email ILIKE $1 ESCAPE '\')`, []any{pattern}
}

func buildListQuery(q model.UserQuery) (string, []any) {
	where, args := searchPredicate(q.Search)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(userColumns)
	b.WriteString(", ")
	b.WriteString(chatCountColumn)
	b.WriteString("\n\t\tFROM users u ")
	if where != "" {
		b.WriteString(where)
		b.WriteString(" ")
	}
	b.WriteString(orderClause(q.SortBy, q.SortDirection))

	args = append(args, q.Limit, q.Offset)
	fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return b.String(), args
}

func buildCountQuery(search string) (string, []any) {
	where, args := searchPredicate(search)
	query := "SELECT COUNT(*) FROM users u"
	if where != "" {
		query += " " + where
	}
	return query, args
}

// buildUpdateQuery returns an UPDATE of the fields set in patch, reading back the row with its
// chat count. It reports false when the patch is empty.
func buildUpdateQuery(id string, patch model.UserPatch) (string, []any, bool) {
	if patch.Empty() {
		return "", nil, false
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Role != nil {
		set("role", string(*patch.Role))
	}
	if patch.Banned != nil {
		set("banned", *patch.Banned)
		if !*patch.Banned {
			sets = append(sets, "ban_reason = NULL")
		}
	}
	if patch.BanReason != nil {
		switch {
		case patch.Banned == nil:
			// A reason alone only applies to a row that is already banned.
			args = append(args, *patch.BanReason)
			sets = append(sets, fmt.Sprintf("ban_reason = CASE WHEN banned THEN $%d ELSE ban_reason END", len(args)))
		case *patch.Banned:
			set("ban_reason", *patch.BanReason)
		}
	}
	if patch.AdminGrantedPro != nil {
		set("admin_granted_pro", *patch.AdminGrantedPro)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`WITH u AS (
		UPDATE users SET %s WHERE id = $%d
		RETURNING *
	)
	SELECT %s, %s FROM u`, strings.Join(sets, ", "), len(args), userColumns, chatCountColumn)

	return query, args, true
}
