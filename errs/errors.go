package errs

import (
	"errors"
	"sync"

	"github.com/napalu/argbind/i18n"
)

// Definition-time errors
var (
	ErrDuplicateOptionName  = i18n.NewError(ErrDuplicateOptionNameKey)
	ErrDefaultOnPositional  = i18n.NewError(ErrDefaultOnPositionalKey)
	ErrRequiredOnPositional = i18n.NewError(ErrRequiredOnPositionalKey)
	ErrRequiredWithDefault  = i18n.NewError(ErrRequiredWithDefaultKey)
	ErrMissingElementType   = i18n.NewError(ErrMissingElementTypeKey)
	ErrMissingType          = i18n.NewError(ErrMissingTypeKey)
	ErrGroupWithoutBuilder  = i18n.NewError(ErrGroupWithoutBuilderKey)
	ErrEnumWithoutValues    = i18n.NewError(ErrEnumWithoutValuesKey)
	ErrEmptyOptionName      = i18n.NewError(ErrEmptyOptionNameKey)
	ErrInvalidParameterKind = i18n.NewError(ErrInvalidParameterKindKey)
	ErrNilParameter         = i18n.NewError(ErrNilParameterKey)
	ErrEmptyCommandName     = i18n.NewError(ErrEmptyCommandNameKey)
	ErrNoSignatures         = i18n.NewError(ErrNoSignaturesKey)
	ErrNoInvoker            = i18n.NewError(ErrNoInvokerKey)
	ErrCommandExists        = i18n.NewError(ErrCommandExistsKey)
	ErrNilConverter         = i18n.NewError(ErrNilConverterKey)
)

// Bind-time errors
var (
	ErrMissingArgument       = i18n.NewError(ErrMissingArgumentKey)
	ErrExcessArguments       = i18n.NewError(ErrExcessArgumentsKey)
	ErrUnknownOption         = i18n.NewError(ErrUnknownOptionKey)
	ErrUnknownOptions        = i18n.NewError(ErrUnknownOptionsKey)
	ErrRequiredOptionMissing = i18n.NewError(ErrRequiredOptionMissingKey)
	ErrDuplicateOption       = i18n.NewError(ErrDuplicateOptionKey)
	ErrConversion            = i18n.NewError(ErrConversionKey)
	ErrInvalidEnumValue      = i18n.NewError(ErrInvalidEnumValueKey)
	ErrUnsupportedContainer  = i18n.NewError(ErrUnsupportedContainerKey)
	ErrUnsupportedType       = i18n.NewError(ErrUnsupportedTypeKey)
	ErrUnorderedElements     = i18n.NewError(ErrUnorderedElementsKey)
	ErrCircularReference     = i18n.NewError(ErrCircularReferenceKey)
	ErrUnresolvedPlaceholder = i18n.NewError(ErrUnresolvedPlaceholderKey)
	ErrGroupBuild            = i18n.NewError(ErrGroupBuildKey)
	ErrNoMatchingSignature   = i18n.NewError(ErrNoMatchingSignatureKey)
)

// Dispatch errors
var (
	ErrCommandNotFound       = i18n.NewError(ErrCommandNotFoundKey)
	ErrEmptyCommandLine      = i18n.NewError(ErrEmptyCommandLineKey)
	ErrInvalidCommandLine    = i18n.NewError(ErrInvalidCommandLineKey)
	ErrCommandFailed         = i18n.NewError(ErrCommandFailedKey)
	ErrNotAttachedToTerminal = i18n.NewError(ErrNotAttachedToTerminalKey)
	ErrEmptyInput            = i18n.NewError(ErrEmptyInputKey)
	ErrLanguageUnavailable   = i18n.NewError(ErrLanguageUnavailableKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrDuplicateOptionName,
		ErrDefaultOnPositional,
		ErrRequiredOnPositional,
		ErrRequiredWithDefault,
		ErrMissingElementType,
		ErrMissingType,
		ErrGroupWithoutBuilder,
		ErrEnumWithoutValues,
		ErrEmptyOptionName,
		ErrInvalidParameterKind,
		ErrNilParameter,
		ErrEmptyCommandName,
		ErrNoSignatures,
		ErrNoInvoker,
		ErrCommandExists,
		ErrNilConverter,
		ErrMissingArgument,
		ErrExcessArguments,
		ErrUnknownOption,
		ErrUnknownOptions,
		ErrRequiredOptionMissing,
		ErrDuplicateOption,
		ErrConversion,
		ErrInvalidEnumValue,
		ErrUnsupportedContainer,
		ErrUnsupportedType,
		ErrUnorderedElements,
		ErrCircularReference,
		ErrUnresolvedPlaceholder,
		ErrGroupBuild,
		ErrNoMatchingSignature,
		ErrCommandNotFound,
		ErrEmptyCommandLine,
		ErrInvalidCommandLine,
		ErrCommandFailed,
		ErrNotAttachedToTerminal,
		ErrEmptyInput,
		ErrLanguageUnavailable,
	},
}

// UpdateMessageProvider updates the message provider for all built-in errors.
//
// Example:
//
//	bundle, _ := i18n.NewBundle()
//	bundle.SetDefaultLanguage(language.German)
//	errs.UpdateMessageProvider(i18n.NewBundleMessageProvider(bundle))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}

// IsBindError reports whether err was raised while binding arguments, as opposed to
// a definition or dispatch failure
func IsBindError(err error) bool {
	for _, e := range []error{
		ErrMissingArgument, ErrExcessArguments, ErrUnknownOption, ErrUnknownOptions,
		ErrRequiredOptionMissing, ErrDuplicateOption, ErrConversion, ErrInvalidEnumValue,
		ErrUnsupportedContainer, ErrUnsupportedType, ErrUnorderedElements, ErrCircularReference,
		ErrUnresolvedPlaceholder, ErrGroupBuild, ErrNoMatchingSignature,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
