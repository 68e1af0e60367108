package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/netpro-backend/internal/domain/authz"
	"github.com/rafabene/netpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/netpro-backend/internal/domain/errors"
	"github.com/rafabene/netpro-backend/internal/services"
)

var _ = Describe("OperatorService", func() {
	var (
		repo    *fakeOperatorRepository
		events  *services.EventBroadcaster
		service *services.OperatorService
		ctx     context.Context
	)

	BeforeEach(func() {
		repo = newFakeOperatorRepository()
		events = services.NewEventBroadcaster(noopLogger{})
		service = services.NewOperatorService(repo, fakeUnitOfWork{}, events, noopLogger{})
		ctx = context.Background()
	})

	createOperator := func(email string, role authz.Role) *entities.Operator {
		operator, err := service.CreateOperator(ctx, services.CreateOperatorInput{
			Email: email,
			Name:  "Test Operator",
			Role:  role,
		})
		Expect(err).NotTo(HaveOccurred())
		return operator
	}

	Describe("CreateOperator", func() {
		It("cria operador com listas de override vazias", func() {
			operator := createOperator("novo@netpro.example", authz.RoleCustomerCare)

			Expect(operator.ID).NotTo(BeEmpty())
			Expect(operator.AddedPermissions).To(BeEmpty())
			Expect(operator.RemovedPermissions).To(BeEmpty())
		})

		It("rejeita email duplicado", func() {
			createOperator("dup@netpro.example", authz.RoleAdmin)

			_, err := service.CreateOperator(ctx, services.CreateOperatorInput{
				Email: "dup@netpro.example",
				Name:  "Other",
				Role:  authz.RoleAdmin,
			})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("rejeita role desconhecido", func() {
			_, err := service.CreateOperator(ctx, services.CreateOperatorInput{
				Email: "x@netpro.example",
				Name:  "X",
				Role:  authz.Role("root"),
			})
			Expect(err).To(MatchError(domainerrors.ErrInvalidRole))
		})
	})

	Describe("UpdateOperator", func() {
		It("troca de role zera as listas de override", func() {
			operator := createOperator("care@netpro.example", authz.RoleCustomerCare)
			admin := createOperator("admin@netpro.example", authz.RoleSuperAdmin)

			_, err := service.UpdatePermissions(ctx, admin, operator.ID,
				[]authz.Permission{authz.PermissionRoutersReboot},
				[]authz.Permission{authz.PermissionCustomersView},
			)
			Expect(err).NotTo(HaveOccurred())

			newRole := authz.RoleFieldTech
			updated, err := service.UpdateOperator(ctx, operator.ID, services.UpdateOperatorInput{
				Role: &newRole,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(authz.RoleFieldTech))
			Expect(updated.AddedPermissions).To(BeEmpty())
			Expect(updated.RemovedPermissions).To(BeEmpty())
		})

		It("manter o mesmo role preserva os overrides", func() {
			operator := createOperator("same@netpro.example", authz.RoleCustomerCare)
			admin := createOperator("admin2@netpro.example", authz.RoleSuperAdmin)

			_, err := service.UpdatePermissions(ctx, admin, operator.ID,
				[]authz.Permission{authz.PermissionRoutersReboot}, nil)
			Expect(err).NotTo(HaveOccurred())

			sameRole := authz.RoleCustomerCare
			name := "Renamed"
			updated, err := service.UpdateOperator(ctx, operator.ID, services.UpdateOperatorInput{
				Name: &name,
				Role: &sameRole,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Renamed"))
			Expect(updated.AddedPermissions).To(ConsistOf(authz.PermissionRoutersReboot))
		})
	})

	Describe("UpdatePermissions", func() {
		var (
			target *entities.Operator
			admin  *entities.Operator
		)

		BeforeEach(func() {
			target = createOperator("target@netpro.example", authz.RoleCustomerCare)
			admin = createOperator("chief@netpro.example", authz.RoleSuperAdmin)
		})

		It("persiste o par (added, removed) e o resolver passa a refletir", func() {
			updated, err := service.UpdatePermissions(ctx, admin, target.ID,
				[]authz.Permission{authz.PermissionRoutersReboot},
				[]authz.Permission{authz.PermissionCustomersView},
			)
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Can(authz.PermissionRoutersReboot)).To(BeTrue())
			Expect(updated.Can(authz.PermissionCustomersView)).To(BeFalse())
			Expect(updated.Can(authz.PermissionPaymentsView)).To(BeTrue())
		})

		It("nega actor sem operators.edit e não toca na persistência", func() {
			tech := createOperator("tech@netpro.example", authz.RoleFieldTech)

			_, err := service.UpdatePermissions(ctx, tech, target.ID,
				[]authz.Permission{authz.PermissionRoutersReboot}, nil)
			Expect(err).To(MatchError(domainerrors.ErrInsufficientPermission))

			reloaded, err := service.GetOperator(ctx, target.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.AddedPermissions).To(BeEmpty())
		})

		It("nega actor nil (não autenticado)", func() {
			_, err := service.UpdatePermissions(ctx, nil, target.ID,
				[]authz.Permission{authz.PermissionRoutersReboot}, nil)
			Expect(err).To(MatchError(domainerrors.ErrInsufficientPermission))
		})

		It("rejeita overrides mal construídos", func() {
			// customers.view é default de customer_care: não pode ir em added
			_, err := service.UpdatePermissions(ctx, admin, target.ID,
				[]authz.Permission{authz.PermissionCustomersView}, nil)
			Expect(err).To(MatchError(domainerrors.ErrInvalidOverrides))
		})

		It("propaga falha de persistência sem publicar evento", func() {
			ch := events.Subscribe()
			defer events.Unsubscribe(ch)

			repo.updateErr = errors.New("connection reset")
			_, err := service.UpdatePermissions(ctx, admin, target.ID,
				[]authz.Permission{authz.PermissionRoutersReboot}, nil)
			Expect(err).To(MatchError(repo.updateErr))
			Expect(ch).NotTo(Receive())
		})

		It("publica evento de permissões atualizadas", func() {
			ch := events.Subscribe()
			defer events.Unsubscribe(ch)

			_, err := service.UpdatePermissions(ctx, admin, target.ID,
				[]authz.Permission{authz.PermissionRoutersReboot}, nil)
			Expect(err).NotTo(HaveOccurred())

			var event services.PermissionEvent
			Expect(ch).To(Receive(&event))
			Expect(event.Type).To(Equal(services.EventPermissionsUpdated))
			Expect(event.OperatorID).To(Equal(target.ID))
		})
	})

	Describe("DeleteOperator", func() {
		It("soft delete esconde o operador das buscas", func() {
			operator := createOperator("bye@netpro.example", authz.RoleAdmin)

			Expect(service.DeleteOperator(ctx, operator.ID)).To(Succeed())

			_, err := service.GetOperator(ctx, operator.ID)
			Expect(err).To(MatchError(domainerrors.ErrOperatorNotFound))
		})

		It("retorna not found para id inexistente", func() {
			err := service.DeleteOperator(ctx, "missing")
			Expect(err).To(MatchError(domainerrors.ErrOperatorNotFound))
		})
	})
})
