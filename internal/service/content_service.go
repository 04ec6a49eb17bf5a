package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"
	"strings"
)

type ContentService interface {
	PublishContent(ctx context.Context, authorID uint64, dto *dto.ContentCreateDTO) (*dto.ContentDTO, error)
	GetContent(ctx context.Context, id uint64) (*dto.ContentDTO, error)
	ListContentsByChannel(ctx context.Context, channelID uint64) ([]*dto.ContentDTO, error)
	DeleteContent(ctx context.Context, operatorID, contentID uint64) error
}

type ContentServiceImpl struct {
	contentRepo repository.ContentRepo
	channelRepo repository.ChannelRepo
	userRepo    repository.UserRepo
}

func NewContentService(contentRepo repository.ContentRepo, channelRepo repository.ChannelRepo, userRepo repository.UserRepo) ContentService {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

// PublishContent 仅频道属主可以向自己的频道发布内容
func (s *ContentServiceImpl) PublishContent(ctx context.Context, authorID uint64, createDTO *dto.ContentCreateDTO) (*dto.ContentDTO, error) {
	if strings.TrimSpace(createDTO.Body) == "" {
		return nil, ErrContentBodyEmpty
	}
	channel, err := s.channelRepo.GetChannel(ctx, createDTO.ChannelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	if channel.OwnerID != authorID {
		return nil, ErrChannelNotOwner
	}

	content := &model.Content{
		ChannelID: createDTO.ChannelID,
		AuthorID:  authorID,
		Body:      createDTO.Body,
	}
	err = s.contentRepo.CreateContent(ctx, content)
	if err != nil {
		return nil, err
	}
	return s.toContentDTO(ctx, content), nil
}

func (s *ContentServiceImpl) GetContent(ctx context.Context, id uint64) (*dto.ContentDTO, error) {
	content, err := s.contentRepo.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return s.toContentDTO(ctx, content), nil
}

func (s *ContentServiceImpl) ListContentsByChannel(ctx context.Context, channelID uint64) ([]*dto.ContentDTO, error) {
	channel, err := s.channelRepo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	contents, err := s.contentRepo.ListContentsByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return ExpandContentList(ctx, s.userRepo, contents)
}

// DeleteContent 仅作者可删，投票随内容一并清理
func (s *ContentServiceImpl) DeleteContent(ctx context.Context, operatorID, contentID uint64) error {
	content, err := s.contentRepo.GetContent(ctx, contentID)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}
	if content.AuthorID != operatorID {
		return ErrContentNotAuthor
	}
	return s.contentRepo.DeleteContentCascade(ctx, contentID)
}

func (s *ContentServiceImpl) toContentDTO(ctx context.Context, content *model.Content) *dto.ContentDTO {
	item := &dto.ContentDTO{
		ID:        content.ID,
		ChannelID: content.ChannelID,
		AuthorID:  content.AuthorID,
		Body:      content.Body,
		CreatedAt: util.FormatTime(content.CreatedAt),
		UpdatedAt: util.FormatTime(content.UpdatedAt),
	}
	author, err := s.userRepo.GetUserByID(ctx, content.AuthorID)
	if err == nil && author != nil {
		item.AuthorNickname = author.Nickname
	}
	return item
}

// ExpandContentList 批量回填作者昵称，信息流与频道列表共用
func ExpandContentList(ctx context.Context, userRepo repository.UserRepo, contents []*model.Content) ([]*dto.ContentDTO, error) {
	authorIds := make([]uint64, 0, len(contents))
	seen := make(map[uint64]struct{}, len(contents))
	for _, content := range contents {
		if _, ok := seen[content.AuthorID]; ok {
			continue
		}
		seen[content.AuthorID] = struct{}{}
		authorIds = append(authorIds, content.AuthorID)
	}
	authors, err := userRepo.GetUsersByIDs(ctx, authorIds)
	if err != nil {
		return nil, err
	}
	mp := make(map[uint64]string, len(authors))
	for _, author := range authors {
		mp[author.ID] = author.Nickname
	}
	list := make([]*dto.ContentDTO, 0, len(contents))
	for _, content := range contents {
		list = append(list, &dto.ContentDTO{
			ID:             content.ID,
			ChannelID:      content.ChannelID,
			AuthorID:       content.AuthorID,
			AuthorNickname: mp[content.AuthorID],
			Body:           content.Body,
			CreatedAt:      util.FormatTime(content.CreatedAt),
			UpdatedAt:      util.FormatTime(content.UpdatedAt),
		})
	}
	return list, nil
}
