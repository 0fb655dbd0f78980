package repository

const (
	getUserByIDQuery = `SELECT user_id, username, fullname, avatar_url, created_at, updated_at
					 FROM users
					 WHERE user_id = $1`
)
