// Package errs declares the translatable errors returned by argbind.
// This file contains constants for all translation keys used throughout the library.
package errs

// Prefix for all argbind translation keys
const (
	prefixKey = "argbind"
)

// Error prefixes
const (
	ErrorPrefixKey      = prefixKey + ".error"
	DefinitionPrefixKey = ErrorPrefixKey + ".definition"
	BindPrefixKey       = ErrorPrefixKey + ".bind"
	MessagePrefixKey    = prefixKey + ".msg"
)

// Definition-time errors, raised while a signature is compiled
const (
	ErrDuplicateOptionNameKey  = DefinitionPrefixKey + ".duplicate_option_name"
	ErrDefaultOnPositionalKey  = DefinitionPrefixKey + ".default_on_positional"
	ErrRequiredOnPositionalKey = DefinitionPrefixKey + ".required_on_positional"
	ErrRequiredWithDefaultKey  = DefinitionPrefixKey + ".required_with_default"
	ErrMissingElementTypeKey   = DefinitionPrefixKey + ".missing_element_type"
	ErrMissingTypeKey          = DefinitionPrefixKey + ".missing_type"
	ErrGroupWithoutBuilderKey  = DefinitionPrefixKey + ".group_without_builder"
	ErrEnumWithoutValuesKey    = DefinitionPrefixKey + ".enum_without_values"
	ErrEmptyOptionNameKey      = DefinitionPrefixKey + ".empty_option_name"
	ErrInvalidParameterKindKey = DefinitionPrefixKey + ".invalid_parameter_kind"
	ErrNilParameterKey         = DefinitionPrefixKey + ".nil_parameter"
	ErrEmptyCommandNameKey     = DefinitionPrefixKey + ".empty_command_name"
	ErrNoSignaturesKey         = DefinitionPrefixKey + ".no_signatures"
	ErrNoInvokerKey            = DefinitionPrefixKey + ".no_invoker"
	ErrCommandExistsKey        = DefinitionPrefixKey + ".command_exists"
	ErrNilConverterKey         = DefinitionPrefixKey + ".nil_converter"
)

// Bind-time errors, raised while an argument vector is bound to a signature
const (
	ErrMissingArgumentKey       = BindPrefixKey + ".missing_argument"
	ErrExcessArgumentsKey       = BindPrefixKey + ".excess_arguments"
	ErrUnknownOptionKey         = BindPrefixKey + ".unknown_option"
	ErrUnknownOptionsKey        = BindPrefixKey + ".unknown_options"
	ErrRequiredOptionMissingKey = BindPrefixKey + ".required_option_missing"
	ErrDuplicateOptionKey       = BindPrefixKey + ".duplicate_option"
	ErrConversionKey            = BindPrefixKey + ".conversion"
	ErrInvalidEnumValueKey      = BindPrefixKey + ".invalid_enum_value"
	ErrUnsupportedContainerKey  = BindPrefixKey + ".unsupported_container"
	ErrUnsupportedTypeKey       = BindPrefixKey + ".unsupported_type"
	ErrUnorderedElementsKey     = BindPrefixKey + ".unordered_elements"
	ErrCircularReferenceKey     = BindPrefixKey + ".circular_reference"
	ErrUnresolvedPlaceholderKey = BindPrefixKey + ".unresolved_placeholder"
	ErrGroupBuildKey            = BindPrefixKey + ".group_build"
	ErrNoMatchingSignatureKey   = BindPrefixKey + ".no_matching_signature"
)

// Dispatch errors
const (
	ErrCommandNotFoundKey       = ErrorPrefixKey + ".command_not_found"
	ErrEmptyCommandLineKey      = ErrorPrefixKey + ".empty_command_line"
	ErrInvalidCommandLineKey    = ErrorPrefixKey + ".invalid_command_line"
	ErrCommandFailedKey         = ErrorPrefixKey + ".command_failed"
	ErrNotAttachedToTerminalKey = ErrorPrefixKey + ".not_attached_to_terminal"
	ErrEmptyInputKey            = ErrorPrefixKey + ".empty_input"
	ErrLanguageUnavailableKey   = ErrorPrefixKey + ".language_unavailable"
)

// UI messages
const (
	MsgUsageKey      = MessagePrefixKey + ".usage"
	MsgOrKey         = MessagePrefixKey + ".or"
	MsgCommandsKey   = MessagePrefixKey + ".commands"
	MsgErrorKey      = MessagePrefixKey + ".error"
	MsgPasswordKey   = MessagePrefixKey + ".password"
	MsgRequiredKey   = MessagePrefixKey + ".required"
	MsgDefaultsToKey = MessagePrefixKey + ".defaults_to"
)
