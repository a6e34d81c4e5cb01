package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/project/librarydesk/internal/entity"
	"github.com/project/librarydesk/pkg/logger"
)

const memberFieldCount = 3

var _ MembersRepository = (*memberStore)(nil)

type memberStore struct {
	logger  *zap.Logger
	path    string
	members []entity.Member
}

func NewMemberStore(logger *zap.Logger, path string) (*memberStore, error) {
	s := &memberStore{
		logger: logger,
		path:   path,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *memberStore) load() error {
	file, err := os.Open(s.path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("can not open member store %s: %w", s.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordBytes)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())

		if text == "" {
			continue
		}

		member, ok := parseMemberRecord(text)

		if !ok {
			logger.MakeWarn(s.logger, "skipping malformed member record",
				zap.String("file", s.path),
				zap.Int("line", line))
			continue
		}

		s.members = append(s.members, member)
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("can not read member store %s: %w", s.path, err)
	}

	return nil
}

func parseMemberRecord(line string) (entity.Member, bool) {
	parts := strings.Split(line, fieldDelimiter)

	if len(parts) != memberFieldCount {
		return entity.Member{}, false
	}

	member := entity.Member{
		ID:   parts[0],
		Name: parts[1],
	}

	if parts[2] != "" {
		member.Borrowed = lo.Uniq(strings.Split(parts[2], listDelimiter))
	}

	return member, true
}

func (s *memberStore) save() error {
	records := lo.Map(s.members, func(member entity.Member, _ int) string {
		fields := []string{member.ID, member.Name, strings.Join(member.Borrowed, listDelimiter)}
		return strings.Join(fields, fieldDelimiter) + "\n"
	})

	if err := os.WriteFile(s.path, []byte(strings.Join(records, "")), 0644); err != nil {
		return fmt.Errorf("can not save member store %s: %w", s.path, err)
	}

	return nil
}

func (s *memberStore) AllMembers(_ context.Context) []entity.Member {
	return lo.Map(s.members, func(member entity.Member, _ int) entity.Member {
		member.Borrowed = slices.Clone(member.Borrowed)
		return member
	})
}

func (s *memberStore) FindMemberByID(_ context.Context, idMember string) (entity.Member, error) {
	member, ok := lo.Find(s.members, func(m entity.Member) bool {
		return strings.EqualFold(m.ID, idMember)
	})

	if !ok {
		return entity.Member{}, entity.ErrMemberNotFound
	}

	member.Borrowed = slices.Clone(member.Borrowed)

	return member, nil
}

func (s *memberStore) AddMember(_ context.Context, member entity.Member) error {
	member.Borrowed = slices.Clone(member.Borrowed)
	s.members = append(s.members, member)

	return s.save()
}

func (s *memberStore) UpdateMember(_ context.Context, updMember entity.Member) error {
	_, idx, ok := lo.FindIndexOf(s.members, func(m entity.Member) bool {
		return strings.EqualFold(m.ID, updMember.ID)
	})

	if !ok {
		return entity.ErrMemberNotFound
	}

	updMember.Borrowed = slices.Clone(updMember.Borrowed)
	s.members[idx] = updMember

	return s.save()
}
