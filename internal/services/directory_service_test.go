package services

import (
	"errors"
	"testing"

	"receivables-console/internal/models"
	"receivables-console/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CustomerDirectoryTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	directory    CustomerDirectoryInterface
}

func (s *CustomerDirectoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.directory = NewCustomerDirectoryService(s.customerRepo)
}

func (s *CustomerDirectoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CustomerDirectoryTestSuite) TestEnsureLoaded_ReadsOnce() {
	s.customerRepo.EXPECT().GetAll().Return([]models.Customer{
		{ID: "CUST-01", DisplayName: "Acme Corp"},
		{ID: "CUST-02", DisplayName: "Globex"},
	}, nil).Times(1)

	s.NoError(s.directory.EnsureLoaded())
	s.NoError(s.directory.EnsureLoaded())

	s.Equal("Acme Corp", s.directory.ResolveName("CUST-01"))
	s.Equal("Globex", s.directory.ResolveName("CUST-02"))
}

func (s *CustomerDirectoryTestSuite) TestResolveName_FallsBackToID() {
	s.customerRepo.EXPECT().GetAll().Return([]models.Customer{
		{ID: "CUST-01", DisplayName: ""},
	}, nil)

	s.Require().NoError(s.directory.EnsureLoaded())

	// Missing entry and blank display name both fall back to the raw id.
	s.Equal("CUST-99", s.directory.ResolveName("CUST-99"))
	s.Equal("CUST-01", s.directory.ResolveName("CUST-01"))
}

func (s *CustomerDirectoryTestSuite) TestInvalidate_ForcesReload() {
	s.customerRepo.EXPECT().GetAll().Return([]models.Customer{
		{ID: "CUST-01", DisplayName: "Acme Corp"},
	}, nil)
	s.Require().NoError(s.directory.EnsureLoaded())

	s.directory.Invalidate()
	s.Equal("CUST-01", s.directory.ResolveName("CUST-01"))

	s.customerRepo.EXPECT().GetAll().Return([]models.Customer{
		{ID: "CUST-01", DisplayName: "Acme Corporation"},
	}, nil)
	s.Require().NoError(s.directory.EnsureLoaded())
	s.Equal("Acme Corporation", s.directory.ResolveName("CUST-01"))
}

func (s *CustomerDirectoryTestSuite) TestEnsureLoaded_RepositoryError() {
	s.customerRepo.EXPECT().GetAll().Return(nil, errors.New("db down"))

	err := s.directory.EnsureLoaded()

	s.Error(err)
	s.Contains(err.Error(), "failed to load customer directory")
}

func TestCustomerDirectorySuite(t *testing.T) {
	suite.Run(t, new(CustomerDirectoryTestSuite))
}
