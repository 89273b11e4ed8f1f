package usecase

// SubmitAttempts exposes submitAttempts to the external test package.
const SubmitAttempts = submitAttempts
