package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/usecase/catalog/mocks"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/librarydesk/internal/entity"
)

func initMemberTest(t *testing.T) (context.Context, *mocks.MockMembersRepository, *catalogImpl) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockMembersRepo := mocks.NewMockMembersRepository(ctrl)
	ctx := context.Background()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	c := New(logger, nil, mockMembersRepo, nil)
	return ctx, mockMembersRepo, c
}

func TestAddMember(t *testing.T) {
	t.Parallel()

	const name = "Alice"

	tests := []struct {
		name       string
		id         string
		lookup     entity.Member
		lookupErr  error
		persistErr error
		requireErr error
	}{
		{name: "valid add member",
			id:        "M1",
			lookupErr: entity.ErrMemberNotFound},

		{name: "blank id gets generated",
			id: ""},

		{name: "duplicate id",
			id:         "M1",
			lookup:     entity.Member{ID: "M1", Name: "Bob"},
			requireErr: entity.ErrDuplicateMemberID},

		{name: "lookup internal error",
			id:         "M1",
			lookupErr:  errInternal,
			requireErr: errInternal},

		{name: "persist internal error",
			id:         "M1",
			lookupErr:  entity.ErrMemberNotFound,
			persistErr: errInternal,
			requireErr: errInternal},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockMembersRepo, s := initMemberTest(t)

			if test.id != "" {
				mockMembersRepo.EXPECT().FindMemberByID(ctx, test.id).Return(test.lookup, test.lookupErr)
			}

			var added entity.Member
			if test.id == "" || errors.Is(test.lookupErr, entity.ErrMemberNotFound) {
				mockMembersRepo.EXPECT().AddMember(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, input entity.Member) error {
					added = input
					return test.persistErr
				})
			}

			member, err := s.AddMember(ctx, test.id, name)
			require.Equal(t, err, test.requireErr)
			if err != nil {
				require.Empty(t, member)
				return
			}

			require.Equal(t, added, member)
			require.Equal(t, name, member.Name)
			require.Empty(t, member.Borrowed)

			if test.id != "" {
				require.Equal(t, test.id, member.ID)
				return
			}

			err = validation.ValidateStructWithContext(
				ctx,
				&member,
				validation.Field(&member.ID, is.UUID),
			)
			require.NoError(t, err)
		})
	}
}

func TestFindMemberByID(t *testing.T) {
	t.Parallel()

	const idMember = "M1"

	tests := []struct {
		name       string
		member     entity.Member
		requireErr error
	}{
		{name: "valid find member",
			member: entity.Member{ID: idMember, Name: "Alice", Borrowed: []string{"Dune"}}},

		{name: "member not found",
			requireErr: entity.ErrMemberNotFound},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, mockMembersRepo, s := initMemberTest(t)
			mockMembersRepo.EXPECT().FindMemberByID(ctx, idMember).Return(test.member, test.requireErr)

			member, err := s.FindMemberByID(ctx, idMember)
			require.Equal(t, err, test.requireErr)
			if err != nil {
				require.Empty(t, member)
				return
			}
			require.Equal(t, test.member, member)
		})
	}
}

func TestListMembers(t *testing.T) {
	t.Parallel()

	members := []entity.Member{
		{ID: "M1", Name: "Alice", Borrowed: []string{"Dune"}},
		{ID: "M2", Name: "Bob"},
	}

	ctx, mockMembersRepo, s := initMemberTest(t)
	mockMembersRepo.EXPECT().AllMembers(ctx).Return(members)

	require.Equal(t, members, s.ListMembers(ctx))
}
