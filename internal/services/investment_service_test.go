package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvestmentServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	investmentRepo *repository_mocks.MockInvestmentRepositoryInterface
	service        *investmentService
	ctx            context.Context
}

func (s *InvestmentServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.investmentRepo = repository_mocks.NewMockInvestmentRepositoryInterface(s.ctrl)
	s.service = NewInvestmentService(s.investmentRepo, nil, discardLogger()).(*investmentService)
	s.service.now = fixedClock(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC))
	s.ctx = context.Background()
}

func (s *InvestmentServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInvestmentServiceSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceSuite))
}

func (s *InvestmentServiceSuite) TestList_MapsRows() {
	s.investmentRepo.EXPECT().List(s.ctx).Return([]models.Investment{
		{ID: 4, AssetName: "Tesouro Selic", CurrentValue: decimal.RequireFromString("10250.75"), LastUpdated: models.NewDate(2024, time.June, 1)},
	}, nil)

	items, err := s.service.List(s.ctx)

	s.Require().NoError(err)
	s.Equal([]dto.InvestmentItem{
		{ID: 4, AssetName: "Tesouro Selic", CurrentValue: 10250.75, LastUpdated: "2024-06-01"},
	}, items)
}

func (s *InvestmentServiceSuite) TestInsert_StampsToday() {
	s.investmentRepo.EXPECT().
		Create(s.ctx, gomock.AssignableToTypeOf(&models.Investment{})).
		DoAndReturn(func(_ context.Context, inv *models.Investment) error {
			s.Equal("CDB", inv.AssetName)
			s.Equal("2024-12-31", inv.LastUpdated.String())
			s.Equal("0.00", inv.CurrentValue.StringFixed(2))
			return nil
		})

	result := s.service.Insert(s.ctx, dto.CreateInvestmentRequest{AssetName: " CDB ", CurrentValue: "0"})

	s.Equal(dto.Succeeded("Investment added"), result)
}

func (s *InvestmentServiceSuite) TestInsert_Validation() {
	result := s.service.Insert(s.ctx, dto.CreateInvestmentRequest{AssetName: "", CurrentValue: "1"})
	s.Equal(errors.ValidationRequiredField, result.Code)

	result = s.service.Insert(s.ctx, dto.CreateInvestmentRequest{AssetName: "CDB", CurrentValue: "-5"})
	s.Equal(errors.ValidationInvalidAmount, result.Code)
	s.False(result.Success)
}

func (s *InvestmentServiceSuite) TestRemove_AbsentIDStillSucceeds() {
	s.investmentRepo.EXPECT().Delete(s.ctx, uint(99)).Return(int64(0), nil)

	s.Equal(dto.Succeeded("Investment removed"), s.service.Remove(s.ctx, "99"))
}

func (s *InvestmentServiceSuite) TestRemove_StorageFailure() {
	s.investmentRepo.EXPECT().Delete(s.ctx, uint(1)).Return(int64(0), stderrors.New("failed to delete investment: boom"))

	result := s.service.Remove(s.ctx, "1")

	s.False(result.Success)
	s.Equal("failed to delete investment: boom", result.Message)
}
