package validators

import "github.com/ralona/nutritracker/models"

func (v *DomainValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName, FieldRole, FieldNutritionistID}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(errs, req.Email)
		case FieldPassword:
			checkPassword(errs, req.Password)
		case FieldName:
			checkRequiredText(errs, FieldName, req.Name, maxNameLength)
		case FieldRole:
			if !req.Role.IsValid() {
				errs.add(FieldRole, MsgInvalidRole)
			}
		case FieldNutritionistID:
			if req.NutritionistID == nil {
				continue
			}
			if req.Role == models.RoleNutritionist {
				errs.add(FieldNutritionistID, MsgNotAllowed)
			} else if *req.NutritionistID <= 0 {
				errs.add(FieldNutritionistID, MsgNotPositive)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// validateLogin only checks presence.
func (v *DomainValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				errs.add(FieldEmail, MsgRequired)
			}
		case FieldPassword:
			if req.Password == "" {
				errs.add(FieldPassword, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *DomainValidator) validateInvitation(req models.InvitationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			checkRequiredText(errs, FieldName, req.Name, maxNameLength)
		case FieldEmail:
			checkEmail(errs, req.Email)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *DomainValidator) validateActivation(req models.ActivationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldPassword:
			checkPassword(errs, req.Password)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
