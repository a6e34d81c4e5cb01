package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/internal/log"
)

func (c *catalogImpl) AddMember(ctx context.Context, id, name string) (entity.Member, error) {
	log.InfoAddMember(c.logger, "Start of add member", name)

	member := entity.Member{
		ID:   id,
		Name: name,
	}

	if member.ID == "" {
		member.ID = uuid.NewString()
	} else {
		_, err := c.membersRepository.FindMemberByID(ctx, member.ID)

		if err == nil {
			log.ErrorAddMember(c.logger, entity.ErrDuplicateMemberID, "Failed add member", name)
			return entity.Member{}, entity.ErrDuplicateMemberID
		}

		if !errors.Is(err, entity.ErrMemberNotFound) {
			log.ErrorAddMember(c.logger, err, "Failed add member", name)
			return entity.Member{}, err
		}
	}

	err := c.membersRepository.AddMember(ctx, member)

	if log.ErrorAddMember(c.logger, err, "Failed add member", name) {
		return entity.Member{}, err
	}

	log.InfoAddMember(c.logger, "Added the member", member.Name, member.ID)
	return member, nil
}

func (c *catalogImpl) FindMemberByID(ctx context.Context, idMember string) (entity.Member, error) {
	member, err := c.membersRepository.FindMemberByID(ctx, idMember)

	if log.ErrorFindMember(c.logger, err, "Failed find member", idMember) {
		return entity.Member{}, err
	}

	log.InfoFindMember(c.logger, "Found the member", idMember)
	return member, nil
}

func (c *catalogImpl) ListMembers(ctx context.Context) []entity.Member {
	return c.membersRepository.AllMembers(ctx)
}
