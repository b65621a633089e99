package pgrepo

import (
	"context"

	"github.com/sgerasimov/bankgen/pkg/uow"
)

type AchievementRepository struct {
	conn uow.DBTX
}

func NewAchievementRepository(conn uow.DBTX) *AchievementRepository {
	return &AchievementRepository{conn: conn}
}

// Grant идемпотентно выдает юзеру достижение по имени. Повторная выдача - тихий no-op
// за счет ON CONFLICT DO NOTHING. Возвращает true, если грант реально вставлен.
func (a *AchievementRepository) Grant(ctx context.Context, userID int64, achievementName string) (bool, error) {
	const query = `
		INSERT INTO user_achievements (user_id, achievement_id)
		SELECT $1, achievement_id FROM achievements WHERE name = $2
		ON CONFLICT (user_id, achievement_id) DO NOTHING`

	tag, err := a.conn.Exec(ctx, query, userID, achievementName)
	if err != nil {
		return false, convertErr(err, "granting achievement %q to user %d", achievementName, userID)
	}
	return tag.RowsAffected() > 0, nil
}
