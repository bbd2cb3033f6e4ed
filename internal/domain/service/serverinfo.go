package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/diegoclair/discord-schedule-bot/internal/domain"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/discord-schedule-bot/internal/domain/entity"
	"github.com/disgoorg/disgo/discord"
)

type serverInfoService struct {
	dm      contract.DataManager
	discord contract.DiscordClient
	log     *slog.Logger
}

func newServerInfoService(dm contract.DataManager, discord contract.DiscordClient, log *slog.Logger) *serverInfoService {
	return &serverInfoService{dm: dm, discord: discord, log: log}
}

// SyncMembers mirrors the guild's human members into storage. Members that left are soft-deleted
// and members that came back are restored by the update.
func (s *serverInfoService) SyncMembers(ctx context.Context) error {
	live, err := s.discord.GetMembers(ctx)
	if err != nil {
		return err
	}

	stored, err := s.dm.Member().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stored members: %w", err)
	}

	storedByID := make(map[string]*entity.Member, len(stored))
	for _, m := range stored {
		storedByID[m.MemberID] = m
	}

	var toCreate, toUpdate []*entity.Member
	liveIDs := make(map[string]struct{}, len(live))
	for _, lm := range live {
		if lm.User.Bot {
			continue
		}
		member := memberFromDiscord(lm)
		liveIDs[member.MemberID] = struct{}{}

		current, ok := storedByID[member.MemberID]
		switch {
		case !ok:
			toCreate = append(toCreate, member)
		case memberChanged(current, member):
			toUpdate = append(toUpdate, member)
		}
	}

	var toDelete []string
	for _, m := range stored {
		if m.DeletedAt != nil {
			continue
		}
		if _, ok := liveIDs[m.MemberID]; !ok {
			toDelete = append(toDelete, m.MemberID)
		}
	}

	for start := 0; start < len(toCreate); start += domain.MemberInsertChunk {
		end := min(start+domain.MemberInsertChunk, len(toCreate))
		if err := s.dm.Member().BulkCreate(ctx, toCreate[start:end]); err != nil {
			return fmt.Errorf("failed to insert members: %w", err)
		}
	}

	for _, m := range toUpdate {
		if err := s.dm.Member().Update(ctx, m); err != nil {
			return fmt.Errorf("failed to update members: %w", err)
		}
	}

	if len(toDelete) > 0 {
		err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
			return dm.Member().SoftDelete(ctx, toDelete)
		})
		if err != nil {
			return fmt.Errorf("failed to delete members: %w", err)
		}
	}

	s.log.Info("members synced", "created", len(toCreate), "updated", len(toUpdate), "deleted", len(toDelete))
	return nil
}

// SyncRoles mirrors the guild roles into storage.
func (s *serverInfoService) SyncRoles(ctx context.Context) error {
	live, err := s.discord.GetRoles(ctx)
	if err != nil {
		return err
	}

	stored, err := s.dm.Role().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stored roles: %w", err)
	}

	storedByID := make(map[string]*entity.Role, len(stored))
	for _, r := range stored {
		storedByID[r.RoleID] = r
	}

	var toCreate, toUpdate []*entity.Role
	liveIDs := make(map[string]struct{}, len(live))
	for _, lr := range live {
		role := &entity.Role{RoleID: lr.ID.String(), Name: lr.Name}
		liveIDs[role.RoleID] = struct{}{}

		current, ok := storedByID[role.RoleID]
		switch {
		case !ok:
			toCreate = append(toCreate, role)
		case current.Name != role.Name:
			toUpdate = append(toUpdate, role)
		}
	}

	var toDelete []string
	for _, r := range stored {
		if _, ok := liveIDs[r.RoleID]; !ok {
			toDelete = append(toDelete, r.RoleID)
		}
	}

	if len(toCreate) > 0 {
		if err := s.dm.Role().BulkCreate(ctx, toCreate); err != nil {
			return fmt.Errorf("failed to insert roles: %w", err)
		}
	}

	for _, r := range toUpdate {
		if err := s.dm.Role().Update(ctx, r); err != nil {
			return fmt.Errorf("failed to update roles: %w", err)
		}
	}

	if len(toDelete) > 0 {
		err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
			return dm.Role().Delete(ctx, toDelete)
		})
		if err != nil {
			return fmt.Errorf("failed to delete roles: %w", err)
		}
	}

	s.log.Info("roles synced", "created", len(toCreate), "updated", len(toUpdate), "deleted", len(toDelete))
	return nil
}

func memberFromDiscord(m discord.Member) *entity.Member {
	member := &entity.Member{
		MemberID: m.User.ID.String(),
		UserName: m.User.Username,
		RoleIDs:  make([]string, 0, len(m.RoleIDs)),
	}
	if m.Nick != nil {
		member.NickName = *m.Nick
	}
	for _, id := range m.RoleIDs {
		member.RoleIDs = append(member.RoleIDs, id.String())
	}
	slices.Sort(member.RoleIDs)
	return member
}

func memberChanged(stored, live *entity.Member) bool {
	if stored.DeletedAt != nil || stored.UserName != live.UserName || stored.NickName != live.NickName {
		return true
	}
	roles := slices.Clone(stored.RoleIDs)
	slices.Sort(roles)
	return !slices.Equal(roles, live.RoleIDs)
}
