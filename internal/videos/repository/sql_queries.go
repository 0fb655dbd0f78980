package repository

const (
	createVideoQuery = `INSERT INTO videos (owner_id, title, description, video_url, video_key, thumbnail_url, thumbnail_key, duration, is_published)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING *`

	getVideoByIDQuery = `SELECT video_id, owner_id, title, description, video_url, video_key, thumbnail_url, thumbnail_key,
						duration, views, is_published, created_at, updated_at
					FROM videos WHERE video_id = $1`

	countVideosQuery = `SELECT COUNT(v.video_id) FROM videos v
					WHERE v.is_published = true
						AND ($1 = '' OR v.title ILIKE '%' || $1 || '%' OR v.description ILIKE '%' || $1 || '%')`

	// sort expression is interpolated from a whitelist, never from user
	// input; the ILIKE wildcards are %%-escaped for Sprintf
	listVideosQuery = `SELECT v.video_id, v.owner_id, v.title, v.description, v.video_url, v.video_key,
						v.thumbnail_url, v.thumbnail_key, v.duration, v.views, v.is_published, v.created_at, v.updated_at,
						u.user_id AS "owner.user_id", u.username AS "owner.username", u.avatar_url AS "owner.avatar_url"
					FROM videos v
					JOIN users u ON u.user_id = v.owner_id
					WHERE v.is_published = true
						AND ($1 = '' OR v.title ILIKE '%%' || $1 || '%%' OR v.description ILIKE '%%' || $1 || '%%')
					ORDER BY %s
					OFFSET $2 LIMIT $3`

	updateVideoQuery = `UPDATE videos
					SET title = COALESCE($1, title),
						description = COALESCE($2, description),
						is_published = COALESCE($3, is_published),
						thumbnail_url = COALESCE(NULLIF($4, ''), thumbnail_url),
						thumbnail_key = COALESCE(NULLIF($5, ''), thumbnail_key),
						updated_at = now()
					WHERE video_id = $6
					RETURNING *`

	deleteVideoQuery = `DELETE FROM videos WHERE video_id = $1`

	// single statement so the flip cannot race a concurrent toggle
	togglePublishQuery = `UPDATE videos
					SET is_published = NOT is_published,
						updated_at = now()
					WHERE video_id = $1
					RETURNING *`

	incrementViewsQuery = `UPDATE videos SET views = views + 1 WHERE video_id = $1`
)
