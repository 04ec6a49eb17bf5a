package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"
	"time"
)

type AlertService interface {
	CastVote(ctx context.Context, voterID, contentID uint64, classification string) error
	RetractVote(ctx context.Context, voterID, contentID uint64) error
	ListVotesByContent(ctx context.Context, contentID uint64) ([]*dto.AlertDTO, error)
	ListAllVotes(ctx context.Context) ([]*dto.AlertDTO, error)
	ComputeScore(ctx context.Context, contentID uint64) (*dto.ScoreDTO, error)
}

type AlertServiceImpl struct {
	alertRepo   repository.AlertRepo
	contentRepo repository.ContentRepo
}

func NewAlertService(alertRepo repository.AlertRepo, contentRepo repository.ContentRepo) AlertService {
	return &AlertServiceImpl{
		alertRepo:   alertRepo,
		contentRepo: contentRepo,
	}
}

// CastVote 投出二值分类票，重复投票按冲突拒绝，改票需先撤回
func (s *AlertServiceImpl) CastVote(ctx context.Context, voterID, contentID uint64, classification string) error {
	return performAction(func() error {
		return util.RunChecks(
			func() error {
				if classification != model.AlertSignalA && classification != model.AlertSignalB {
					return ErrAlertInvalidSignal
				}
				return nil
			},
			func() error {
				content, err := s.contentRepo.GetContent(ctx, contentID)
				if err != nil {
					return err
				}
				if content == nil {
					return ErrContentNotFound
				}
				if content.AuthorID == voterID {
					return ErrAlertOwnContent
				}
				return nil
			},
			func() error {
				vote, err := s.alertRepo.GetVote(ctx, voterID, contentID)
				if err != nil {
					return err
				}
				if vote != nil {
					return ErrAlertExist
				}
				return nil
			},
		)
	}, func() error {
		return s.alertRepo.CreateVote(ctx, &model.AlertVote{
			VoterID:        voterID,
			ContentID:      contentID,
			Classification: classification,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		})
	}, ErrAlertExist)
}

// RetractVote 撤回分类票，内容不存在为 404，未投过视为冲突
func (s *AlertServiceImpl) RetractVote(ctx context.Context, voterID, contentID uint64) error {
	return revokeAction(func() error {
		return util.RunChecks(
			func() error {
				content, err := s.contentRepo.GetContent(ctx, contentID)
				if err != nil {
					return err
				}
				if content == nil {
					return ErrContentNotFound
				}
				return nil
			},
			func() error {
				vote, err := s.alertRepo.GetVote(ctx, voterID, contentID)
				if err != nil {
					return err
				}
				if vote == nil {
					return ErrAlertNotExist
				}
				return nil
			},
		)
	}, func() error {
		return s.alertRepo.DeleteVote(ctx, voterID, contentID)
	})
}

func (s *AlertServiceImpl) ListVotesByContent(ctx context.Context, contentID uint64) ([]*dto.AlertDTO, error) {
	content, err := s.contentRepo.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	votes, err := s.alertRepo.ListVotesByContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	return toAlertDTOs(votes), nil
}

func (s *AlertServiceImpl) ListAllVotes(ctx context.Context) ([]*dto.AlertDTO, error) {
	votes, err := s.alertRepo.ListAllVotes(ctx)
	if err != nil {
		return nil, err
	}
	return toAlertDTOs(votes), nil
}

// ComputeScore 风险评分 = A 票数 - B 票数，每次调用实时重算，不走缓存
func (s *AlertServiceImpl) ComputeScore(ctx context.Context, contentID uint64) (*dto.ScoreDTO, error) {
	content, err := s.contentRepo.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	countA, err := s.alertRepo.CountByClassification(ctx, contentID, model.AlertSignalA)
	if err != nil {
		return nil, err
	}
	countB, err := s.alertRepo.CountByClassification(ctx, contentID, model.AlertSignalB)
	if err != nil {
		return nil, err
	}
	return &dto.ScoreDTO{
		ContentID: contentID,
		Score:     countA - countB,
	}, nil
}

func toAlertDTOs(votes []*model.AlertVote) []*dto.AlertDTO {
	list := make([]*dto.AlertDTO, 0, len(votes))
	for _, vote := range votes {
		list = append(list, &dto.AlertDTO{
			VoterID:        vote.VoterID,
			ContentID:      vote.ContentID,
			Classification: vote.Classification,
			CreatedAt:      util.FormatTime(vote.CreatedAt),
		})
	}
	return list
}
